package domain

// Anomaly severities
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Anomaly types produced by the built-in rule set
const (
	AnomalyHighFailureRate   = "high_failure_rate"
	AnomalySlowProcessing    = "slow_processing"
	AnomalyHighValueOrder    = "high_value_order"
	AnomalyCancellationSpike = "cancellation_spike"
)

// Anomaly is one structured finding over a store's recent orders
type Anomaly struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	StoreID     string         `json:"store_id"`
	Severity    string         `json:"severity"`
	Description string         `json:"description"`
	Evidence    map[string]any `json:"evidence"`
}
