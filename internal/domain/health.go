package domain

import "time"

// Health statuses derived from the composite score
const (
	HealthStatusHealthy  = "healthy"
	HealthStatusWarning  = "warning"
	HealthStatusCritical = "critical"
)

// Factor names reported in the health score breakdown
const (
	FactorSuccessRate    = "success_rate"
	FactorProcessingTime = "processing_time"
	FactorRevenueTrend   = "revenue_trend"
)

// HealthScore is the composite 0-100 rating of a store's recent
// operational performance
type HealthScore struct {
	StoreID   string         `json:"store_id"`
	Score     int            `json:"score"`
	Status    string         `json:"status"`
	Factors   map[string]int `json:"factors"`
	Timestamp time.Time      `json:"timestamp"`
}
