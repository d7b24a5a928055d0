package scoring

import (
	"context"

	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

// Scorer rates a store's recent operational performance. It never fails:
// upstream problems degrade to a fallback score so the dashboard always
// has something to render.
type Scorer interface {
	HealthScore(ctx context.Context, storeID string) *domain.HealthScore
}
