package aggregating

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

type Service struct {
	client mockapi.Client
}

func NewService(client mockapi.Client) Aggregator {
	return &Service{client: client}
}

// Aggregate reduces an order list into summary statistics. Zero orders
// yields all-zero stats, never an error. Statuses outside the tracked set
// count toward the total but not toward any bucket.
func Aggregate(orders []domain.Order) domain.AggregateStats {
	stats := domain.AggregateStats{Total: len(orders)}
	if stats.Total == 0 {
		return stats
	}

	var processingSeconds float64
	var revenue float64

	for _, order := range orders {
		switch order.Status {
		case domain.StatusCompleted:
			stats.CompletedCount++
			processingSeconds += order.ProcessingTimeSeconds
			revenue += order.TotalAmount
		case domain.StatusFailed:
			stats.FailedCount++
		case domain.StatusCancelled:
			stats.CancelledCount++
		}
	}

	successRate := float64(stats.CompletedCount) / float64(stats.Total) * 100
	stats.SuccessRatePct = utils.RoundWithTwoDecimalPlace(successRate)
	stats.FailureRatePct = utils.RoundWithTwoDecimalPlace(100 - successRate)

	if stats.CompletedCount > 0 {
		avgMinutes := processingSeconds / float64(stats.CompletedCount) / 60
		stats.AvgProcessingMin = utils.RoundWithTwoDecimalPlace(avgMinutes)
	}

	stats.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	stats.AvgOrderValue = utils.RoundWithTwoDecimalPlace(revenue / float64(stats.Total))

	return stats
}

// StoreMetricsFromOrders maps aggregate stats onto the dashboard response
// shape for one store
func StoreMetricsFromOrders(storeID string, orders []domain.Order) *domain.StoreMetrics {
	stats := Aggregate(orders)

	return &domain.StoreMetrics{
		StoreID:                  storeID,
		TotalOrders24h:           stats.Total,
		SuccessRate:              stats.SuccessRatePct,
		FailureRate:              stats.FailureRatePct,
		AvgProcessingTimeMinutes: stats.AvgProcessingMin,
		TotalRevenue24h:          stats.TotalRevenue,
		AvgOrderValue:            stats.AvgOrderValue,
		ErrorBreakdown:           map[string]int{},
	}
}

func (s *Service) StoreMetrics(ctx context.Context, storeID string) (*domain.StoreMetrics, error) {
	logger := log.ForContext(ctx)

	payload, err := s.client.StoreOrders(ctx, storeID)
	if err != nil {
		logger.WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Error("aggregating: failed to fetch orders for store")
		return nil, err
	}

	orders := mockapi.Orders(payload)

	logger.WithFields(log.Fields{
		"store_id":    storeID,
		"order_count": len(orders),
	}).Debug("aggregating: computing store metrics")

	return StoreMetricsFromOrders(storeID, orders), nil
}

func (s *Service) StoreDashboard(ctx context.Context, storeID string) (*domain.StoreDashboard, error) {
	logger := log.ForContext(ctx)

	store, err := s.client.StoreByID(ctx, storeID)
	if err != nil {
		logger.WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Warn("aggregating: store fetch failed")
		return nil, errors.Wrapf(err, "store not found: %s", storeID)
	}

	// A failed order fetch degrades to an empty list; the store view still
	// renders with zeroed metrics.
	records := []domain.Record{}
	if payload, err := s.client.StoreOrders(ctx, storeID); err != nil {
		logger.WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Warn("aggregating: order fetch failed, rendering empty dashboard")
	} else {
		records = mockapi.Records(payload, mockapi.WrapperOrders)
	}

	return &domain.StoreDashboard{
		Store:   store,
		Orders:  records,
		Metrics: StoreMetricsFromOrders(storeID, domain.OrdersFromRecords(records)),
	}, nil
}
