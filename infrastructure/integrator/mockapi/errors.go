package mockapi

import "fmt"

// UpstreamStatusError reports a non-2xx response from the mock API. The
// upstream status code is proxied back to the caller on the endpoints that
// surface upstream failures.
type UpstreamStatusError struct {
	Status int
	URL    string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("upstream request failed with status %d: %s", e.Status, e.URL)
}

// StatusCode makes the upstream status reusable as the response status
func (e *UpstreamStatusError) StatusCode() int {
	return e.Status
}

// UpstreamUnavailableError reports a transport failure (timeout, refused
// connection, DNS) before any HTTP response was received
type UpstreamUnavailableError struct {
	URL string
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable: %s: %v", e.URL, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// UpstreamFormatError reports a 2xx response whose body was not valid JSON
type UpstreamFormatError struct {
	URL string
	Err error
}

func (e *UpstreamFormatError) Error() string {
	return fmt.Sprintf("upstream returned a non-JSON body: %s: %v", e.URL, e.Err)
}

func (e *UpstreamFormatError) Unwrap() error {
	return e.Err
}
