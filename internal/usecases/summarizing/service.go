package summarizing

import (
	"context"
	"sync"

	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

type Service struct {
	client               mockapi.Client
	maxConcurrentFetches int
}

func NewService(client mockapi.Client, cfg *config.Config) Summarizer {
	maxConcurrent := cfg.Summary.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		client:               client,
		maxConcurrentFetches: maxConcurrent,
	}
}

func (s *Service) DashboardSummary(ctx context.Context, hours int) (*domain.DashboardSummary, error) {
	return s.summarize(ctx, hours)
}

// OrdersSummary shares the dashboard accumulation; the endpoints differ
// only in their accepted (and ignored) query filters.
func (s *Service) OrdersSummary(ctx context.Context, hours int) (*domain.DashboardSummary, error) {
	return s.summarize(ctx, hours)
}

func (s *Service) summarize(ctx context.Context, hours int) (*domain.DashboardSummary, error) {
	logger := log.ForContext(ctx)

	storesPayload, err := s.client.Stores(ctx)
	if err != nil {
		logger.WithError(err).Error("summarizing: failed to fetch store list")
		return nil, err
	}

	stores := mockapi.Records(storesPayload, mockapi.WrapperStores)

	summary := &domain.DashboardSummary{
		TotalStores:    len(stores),
		TimeRangeHours: hours,
	}

	var revenue float64

	// Bounded fan-out: one order fetch per store, accumulation guarded by
	// the mutex so no update is lost.
	semaphore := make(chan struct{}, s.maxConcurrentFetches)
	var wg sync.WaitGroup
	var mu sync.Mutex

	for _, store := range stores {
		storeID, ok := store["id"].(string)
		if !ok || storeID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(storeID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			payload, err := s.client.StoreOrders(ctx, storeID)
			if err != nil {
				logger.WithFields(log.Fields{
					"store_id": storeID,
					"error":    err.Error(),
				}).Warn("summarizing: skipping store after failed order fetch")
				return
			}

			orders := mockapi.Orders(payload)

			mu.Lock()
			defer mu.Unlock()

			summary.TotalOrders += len(orders)
			for _, order := range orders {
				summary.StatusCounts.Count(order.Status)
				if order.Status == domain.StatusCompleted {
					revenue += order.TotalAmount
				}
			}
		}(storeID)
	}

	wg.Wait()

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(revenue)
	if summary.TotalOrders > 0 {
		summary.AvgOrderValue = utils.RoundWithTwoDecimalPlace(revenue / float64(summary.TotalOrders))
	}

	logger.WithFields(log.Fields{
		"total_stores": summary.TotalStores,
		"total_orders": summary.TotalOrders,
	}).Debug("summarizing: rollup complete")

	return summary, nil
}
