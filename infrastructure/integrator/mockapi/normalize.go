package mockapi

import (
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Conventional wrapper keys used by the upstream mock API
const (
	WrapperOrders = "orders"
	WrapperStores = "stores"
)

// Records extracts a clean list of record mappings from a loosely-shaped
// upstream payload. The payload may be a mapping wrapping the list under
// wrapperKey, a bare array, or anything else (which yields an empty list).
// Elements that are not JSON objects are discarded. Every consumer of an
// upstream collection goes through here so malformed responses behave the
// same on every endpoint.
func Records(payload any, wrapperKey string) []domain.Record {
	switch v := payload.(type) {
	case map[string]any:
		if wrapped, ok := v[wrapperKey].([]any); ok {
			return filterRecords(wrapped)
		}
		return []domain.Record{}
	case []any:
		return filterRecords(v)
	default:
		return []domain.Record{}
	}
}

// Orders normalizes an upstream order payload into typed orders
func Orders(payload any) []domain.Order {
	return domain.OrdersFromRecords(Records(payload, WrapperOrders))
}

func filterRecords(seq []any) []domain.Record {
	records := make([]domain.Record, 0, len(seq))
	for _, element := range seq {
		if record, ok := element.(map[string]any); ok {
			records = append(records, record)
		}
	}
	return records
}
