package detecting

import (
	"context"
	"sync"

	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

type Service struct {
	client               mockapi.Client
	rules                []Rule
	maxConcurrentFetches int
}

func NewService(client mockapi.Client, cfg *config.Config, rules ...Rule) Detector {
	if len(rules) == 0 {
		rules = DefaultRules(cfg)
	}

	maxConcurrent := cfg.Summary.MaxConcurrentFetches
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}

	return &Service{
		client:               client,
		rules:                rules,
		maxConcurrentFetches: maxConcurrent,
	}
}

func (s *Service) Detect(ctx context.Context, storeID string) ([]domain.Anomaly, error) {
	if storeID != "" {
		return s.detectForStore(ctx, storeID)
	}
	return s.detectAcrossStores(ctx)
}

func (s *Service) detectForStore(ctx context.Context, storeID string) ([]domain.Anomaly, error) {
	payload, err := s.client.StoreOrders(ctx, storeID)
	if err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Error("detecting: failed to fetch orders for store")
		return nil, err
	}

	return s.evaluate(storeID, mockapi.Orders(payload)), nil
}

// detectAcrossStores fans out one order fetch per store. A store whose
// fetch fails contributes no findings; results keep the store-list order
// so repeated calls over the same data are stable.
func (s *Service) detectAcrossStores(ctx context.Context) ([]domain.Anomaly, error) {
	logger := log.ForContext(ctx)

	storesPayload, err := s.client.Stores(ctx)
	if err != nil {
		logger.WithError(err).Error("detecting: failed to fetch store list")
		return nil, err
	}

	stores := mockapi.Records(storesPayload, mockapi.WrapperStores)

	findings := make([][]domain.Anomaly, len(stores))

	semaphore := make(chan struct{}, s.maxConcurrentFetches)
	var wg sync.WaitGroup

	for i, store := range stores {
		storeID, ok := store["id"].(string)
		if !ok || storeID == "" {
			continue
		}

		wg.Add(1)
		semaphore <- struct{}{}

		go func(slot int, storeID string) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			payload, err := s.client.StoreOrders(ctx, storeID)
			if err != nil {
				logger.WithFields(log.Fields{
					"store_id": storeID,
					"error":    err.Error(),
				}).Warn("detecting: skipping store after failed order fetch")
				return
			}

			findings[slot] = s.evaluate(storeID, mockapi.Orders(payload))
		}(i, storeID)
	}

	wg.Wait()

	anomalies := []domain.Anomaly{}
	for _, storeFindings := range findings {
		anomalies = append(anomalies, storeFindings...)
	}

	return anomalies, nil
}

func (s *Service) evaluate(storeID string, orders []domain.Order) []domain.Anomaly {
	anomalies := []domain.Anomaly{}
	for _, rule := range s.rules {
		anomalies = append(anomalies, rule.Evaluate(storeID, orders)...)
	}
	return anomalies
}
