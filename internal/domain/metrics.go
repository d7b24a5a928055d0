package domain

// AggregateStats are the raw aggregation results over one order list
type AggregateStats struct {
	Total            int     `json:"total"`
	CompletedCount   int     `json:"completed_count"`
	FailedCount      int     `json:"failed_count"`
	CancelledCount   int     `json:"cancelled_count"`
	SuccessRatePct   float64 `json:"success_rate_pct"`
	FailureRatePct   float64 `json:"failure_rate_pct"`
	AvgProcessingMin float64 `json:"avg_processing_minutes"`
	TotalRevenue     float64 `json:"total_revenue"`
	AvgOrderValue    float64 `json:"avg_order_value"`
}

// StoreMetrics is the per-store response shape consumed by the dashboard.
// The *_1h, orders_per_hour, peak_hour and error_breakdown fields are part
// of the frontend contract but are not computed from the 24h order feed.
type StoreMetrics struct {
	StoreID                  string         `json:"store_id"`
	TotalOrders24h           int            `json:"total_orders_24h"`
	TotalOrders1h            int            `json:"total_orders_1h"`
	SuccessRate              float64        `json:"success_rate"`
	FailureRate              float64        `json:"failure_rate"`
	AvgProcessingTimeMinutes float64        `json:"avg_processing_time_minutes"`
	TotalRevenue24h          float64        `json:"total_revenue_24h"`
	AvgOrderValue            float64        `json:"avg_order_value"`
	OrdersPerHour            int            `json:"orders_per_hour"`
	PeakHour                 *int           `json:"peak_hour"`
	ErrorBreakdown           map[string]int `json:"error_breakdown"`
}

// StatusCounts buckets orders over exactly the three tracked statuses
type StatusCounts struct {
	Completed int `json:"completed"`
	Failed    int `json:"failed"`
	Cancelled int `json:"cancelled"`
}

// Count increments the matching bucket; unknown statuses are not counted
func (s *StatusCounts) Count(status string) {
	switch status {
	case StatusCompleted:
		s.Completed++
	case StatusFailed:
		s.Failed++
	case StatusCancelled:
		s.Cancelled++
	}
}

// DashboardSummary aggregates order activity across every store
type DashboardSummary struct {
	TotalStores    int          `json:"total_stores"`
	TotalOrders    int          `json:"total_orders"`
	TotalRevenue   float64      `json:"total_revenue"`
	AvgOrderValue  float64      `json:"avg_order_value"`
	StatusCounts   StatusCounts `json:"status_counts"`
	TimeRangeHours int          `json:"time_range_hours"`
}

// StoreDashboard is the combined store + orders + metrics view. Orders keep
// the raw upstream records so the frontend sees every field upstream sent.
type StoreDashboard struct {
	Store   any           `json:"store"`
	Orders  []Record      `json:"orders"`
	Metrics *StoreMetrics `json:"metrics"`
}
