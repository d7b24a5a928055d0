package mockapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

func TestRecords(t *testing.T) {
	orderA := map[string]any{"id": "o1", "status": "completed"}
	orderB := map[string]any{"id": "o2", "status": "failed"}

	tests := []struct {
		name     string
		payload  any
		expected []domain.Record
	}{
		{
			name:     "wrapped list",
			payload:  map[string]any{"orders": []any{orderA, orderB}},
			expected: []domain.Record{orderA, orderB},
		},
		{
			name:     "bare array",
			payload:  []any{orderA, orderB},
			expected: []domain.Record{orderA, orderB},
		},
		{
			name:     "wrapper key absent",
			payload:  map[string]any{"error": "x"},
			expected: []domain.Record{},
		},
		{
			name:     "wrapper key holds a non-sequence",
			payload:  map[string]any{"orders": "not a list"},
			expected: []domain.Record{},
		},
		{
			name:     "scalar payload",
			payload:  "oops",
			expected: []domain.Record{},
		},
		{
			name:     "nil payload",
			payload:  nil,
			expected: []domain.Record{},
		},
		{
			name:     "non-mapping elements discarded",
			payload:  []any{orderA, "scalar", nil, []any{"list"}, orderB},
			expected: []domain.Record{orderA, orderB},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Records(tt.payload, WrapperOrders))
		})
	}
}

func TestRecordsWrappedAndBareAreEquivalent(t *testing.T) {
	orders := []any{
		map[string]any{"id": "o1"},
		map[string]any{"id": "o2"},
	}

	wrapped := Records(map[string]any{"orders": orders}, WrapperOrders)
	bare := Records(orders, WrapperOrders)

	assert.Equal(t, wrapped, bare)
}

func TestOrdersParsesLeniently(t *testing.T) {
	payload := map[string]any{"orders": []any{
		map[string]any{
			"id":                      "o1",
			"store_id":                "s1",
			"status":                  "completed",
			"total_amount":            "25.50",
			"processing_time_seconds": 600.0,
		},
		map[string]any{
			"id":           "o2",
			"status":       "completed",
			"total_amount": "not-a-number",
		},
	}}

	orders := Orders(payload)

	assert.Len(t, orders, 2)
	assert.Equal(t, 25.5, orders[0].TotalAmount)
	assert.Equal(t, 600.0, orders[0].ProcessingTimeSeconds)
	assert.Equal(t, 0.0, orders[1].TotalAmount)
	assert.Equal(t, 0.0, orders[1].ProcessingTimeSeconds)
}
