package detecting

import (
	"context"

	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Detector flags anomalies over recent orders. Detection is stateless:
// every call works from a fresh upstream fetch and keeps no memory of
// prior calls.
type Detector interface {
	// Detect evaluates the rule set for one store, or for every store when
	// storeID is empty
	Detect(ctx context.Context, storeID string) ([]domain.Anomaly, error)
}

// Rule is one pluggable anomaly heuristic. Implementations must not mutate
// the order list or keep state between calls.
type Rule interface {
	Evaluate(storeID string, orders []domain.Order) []domain.Anomaly
}
