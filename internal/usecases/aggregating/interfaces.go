package aggregating

import (
	"context"

	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Aggregator computes per-store metrics from fresh upstream data
type Aggregator interface {
	// StoreMetrics fetches a store's recent orders and reduces them into
	// the dashboard metrics payload
	StoreMetrics(ctx context.Context, storeID string) (*domain.StoreMetrics, error)

	// StoreDashboard returns the combined store + orders + metrics view
	StoreDashboard(ctx context.Context, storeID string) (*domain.StoreDashboard, error)
}
