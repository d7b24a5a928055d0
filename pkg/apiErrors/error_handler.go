package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrorResponse is the JSON body returned for every failed request. The
// single "detail" field matches what the dashboard frontend expects.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// StatusCoder is implemented by errors that carry an HTTP status of their
// own, e.g. upstream responses proxied back to the caller.
type StatusCoder interface {
	StatusCode() int
}

// WriteDetail writes a JSON error body with the given status code
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Detail: detail})
}

// WriteError maps an error to a response. Errors implementing StatusCoder
// keep their status; anything else becomes a 500.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var sc StatusCoder
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	WriteDetail(w, status, err.Error())
}
