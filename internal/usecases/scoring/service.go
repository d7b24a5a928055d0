package scoring

import (
	"context"
	"math"
	"time"

	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// Weights of each factor in the composite score
const (
	successRateWeight    = 0.5
	processingTimeWeight = 0.3
	revenueTrendWeight   = 0.2
)

type Service struct {
	client mockapi.Client
	now    func() time.Time
}

func NewService(client mockapi.Client) Scorer {
	return &Service{client: client, now: time.Now}
}

// HealthScore fetches the store's recent orders and computes the composite
// score. Every failure path returns a degraded-but-valid score:
//   - fetch failure   -> 60/warning, revenue_trend factor 60
//   - empty order set -> 60/warning, revenue_trend factor 0
//   - scoring panic   -> 60/warning, revenue_trend factor 50
func (s *Service) HealthScore(ctx context.Context, storeID string) (score *domain.HealthScore) {
	logger := log.ForContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.WithFields(log.Fields{
				"store_id": storeID,
				"error":    r,
			}).Error("scoring: recovered from panic, returning fallback score")
			score = s.fallback(storeID, 50)
		}
	}()

	payload, err := s.client.StoreOrders(ctx, storeID)
	if err != nil {
		logger.WithFields(log.Fields{
			"store_id": storeID,
			"error":    err.Error(),
		}).Warn("scoring: order fetch failed, returning fallback score")
		return s.fallback(storeID, 60)
	}

	orders := mockapi.Orders(payload)
	if len(orders) == 0 {
		logger.WithField("store_id", storeID).Debug("scoring: no orders, returning fallback score")
		return s.fallback(storeID, 0)
	}

	return s.score(storeID, orders)
}

func (s *Service) score(storeID string, orders []domain.Order) *domain.HealthScore {
	var completed int
	var positiveTimes []float64

	for _, order := range orders {
		if order.Status != domain.StatusCompleted {
			continue
		}
		completed++
		if order.ProcessingTimeSeconds > 0 {
			positiveTimes = append(positiveTimes, order.ProcessingTimeSeconds)
		}
	}

	successRate := float64(completed) / float64(len(orders)) * 100

	processingScore := processingTimeScore(positiveTimes)

	revenueScore := 0.0
	if completed > 0 {
		revenueScore = math.Min(100, float64(completed)/10*100)
	}

	overall := successRate*successRateWeight +
		processingScore*processingTimeWeight +
		revenueScore*revenueTrendWeight
	overall = math.Round(overall*10) / 10

	status := domain.HealthStatusCritical
	if overall >= 80 {
		status = domain.HealthStatusHealthy
	} else if overall >= 60 {
		status = domain.HealthStatusWarning
	}

	return &domain.HealthScore{
		StoreID: storeID,
		Score:   int(overall),
		Status:  status,
		Factors: map[string]int{
			domain.FactorSuccessRate:    int(successRate),
			domain.FactorProcessingTime: int(processingScore),
			domain.FactorRevenueTrend:   int(revenueScore),
		},
		Timestamp: s.now(),
	}
}

// processingTimeScore maps the average processing time over completed
// orders with a positive parsed time onto a piecewise-linear 20-100 scale.
// Orders without a usable time are excluded from the average, not zeroed.
func processingTimeScore(positiveSeconds []float64) float64 {
	if len(positiveSeconds) == 0 {
		return 50
	}

	var total float64
	for _, seconds := range positiveSeconds {
		total += seconds
	}
	avgMinutes := total / float64(len(positiveSeconds)) / 60

	switch {
	case avgMinutes <= 15:
		return 100
	case avgMinutes <= 30:
		return 100 - ((avgMinutes-15)/15)*40
	default:
		return math.Max(20, 60-((avgMinutes-30)/10)*20)
	}
}

// fallback is the degraded score; only the revenue_trend factor differs
// between the failure modes
func (s *Service) fallback(storeID string, revenueTrend int) *domain.HealthScore {
	return &domain.HealthScore{
		StoreID: storeID,
		Score:   60,
		Status:  domain.HealthStatusWarning,
		Factors: map[string]int{
			domain.FactorSuccessRate:    50,
			domain.FactorProcessingTime: 60,
			domain.FactorRevenueTrend:   revenueTrend,
		},
		Timestamp: s.now(),
	}
}
