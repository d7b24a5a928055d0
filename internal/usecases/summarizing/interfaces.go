package summarizing

import (
	"context"

	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Summarizer builds cross-store rollups by fanning out one order fetch per
// store. A single store's failure degrades that store's contribution to
// empty; a failed store-list fetch fails the whole request.
type Summarizer interface {
	DashboardSummary(ctx context.Context, hours int) (*domain.DashboardSummary, error)
	OrdersSummary(ctx context.Context, hours int) (*domain.DashboardSummary, error)
}
