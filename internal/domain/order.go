package domain

import (
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

// Order statuses tracked by the aggregations. Upstream may send other
// values; those count toward totals but never toward a status bucket.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusCancelled = "cancelled"
	StatusPending   = "pending"
)

// Record is one loosely-shaped JSON object from the upstream mock API
type Record = map[string]any

// Order is the typed view of an upstream order record. Missing or
// unparsable numeric fields degrade to zero instead of rejecting the
// record.
type Order struct {
	ID                    string
	StoreID               string
	Status                string
	TotalAmount           float64
	ProcessingTimeSeconds float64
	Timestamp             string
}

// OrderFromRecord builds a typed Order from a normalized upstream record
func OrderFromRecord(record Record) Order {
	order := Order{
		ID:        stringField(record, "id"),
		StoreID:   stringField(record, "store_id"),
		Status:    stringField(record, "status"),
		Timestamp: stringField(record, "timestamp"),
	}

	if amount, ok := utils.ParseNumericLenient(record["total_amount"]); ok {
		order.TotalAmount = amount
	}

	if seconds, ok := utils.ParseNumericLenient(record["processing_time_seconds"]); ok {
		order.ProcessingTimeSeconds = seconds
	}

	return order
}

// OrdersFromRecords converts a normalized record list into typed orders
func OrdersFromRecords(records []Record) []Order {
	orders := make([]Order, 0, len(records))
	for _, record := range records {
		orders = append(orders, OrderFromRecord(record))
	}
	return orders
}

func stringField(record Record, key string) string {
	if value, ok := record[key].(string); ok {
		return value
	}
	return ""
}
