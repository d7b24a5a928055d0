package detecting

import (
	"fmt"

	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/utils"
)

// DefaultRules builds the built-in rule set with thresholds from config
func DefaultRules(cfg *config.Config) []Rule {
	return []Rule{
		&FailureRateRule{ThresholdPct: cfg.Anomaly.FailureRatePct},
		&CancellationSpikeRule{ThresholdPct: cfg.Anomaly.CancellationRatePct},
		&SlowProcessingRule{ThresholdMinutes: cfg.Anomaly.SlowProcessingMinutes},
		&HighValueOrderRule{ThresholdAmount: cfg.Anomaly.HighValueAmount},
	}
}

func newAnomaly(anomalyType, storeID, severity, description string, evidence map[string]any) domain.Anomaly {
	anomaly := domain.Anomaly{
		Type:        anomalyType,
		StoreID:     storeID,
		Severity:    severity,
		Description: description,
		Evidence:    evidence,
	}

	if id, err := utils.GenerateID(); err == nil {
		anomaly.ID = id
	}

	return anomaly
}

// FailureRateRule flags stores whose failed-order share exceeds the
// threshold; twice the threshold escalates to critical.
type FailureRateRule struct {
	ThresholdPct float64
}

func (r *FailureRateRule) Evaluate(storeID string, orders []domain.Order) []domain.Anomaly {
	if len(orders) == 0 {
		return nil
	}

	var failed int
	for _, order := range orders {
		if order.Status == domain.StatusFailed {
			failed++
		}
	}

	failureRate := float64(failed) / float64(len(orders)) * 100
	if failureRate <= r.ThresholdPct {
		return nil
	}

	severity := domain.SeverityWarning
	if failureRate > r.ThresholdPct*2 {
		severity = domain.SeverityCritical
	}

	return []domain.Anomaly{newAnomaly(
		domain.AnomalyHighFailureRate,
		storeID,
		severity,
		fmt.Sprintf("%.1f%% of recent orders failed (threshold %.1f%%)", failureRate, r.ThresholdPct),
		map[string]any{
			"total_orders":     len(orders),
			"failed_orders":    failed,
			"failure_rate_pct": utils.RoundWithTwoDecimalPlace(failureRate),
		},
	)}
}

// CancellationSpikeRule flags stores with an unusual cancellation share
type CancellationSpikeRule struct {
	ThresholdPct float64
}

func (r *CancellationSpikeRule) Evaluate(storeID string, orders []domain.Order) []domain.Anomaly {
	if len(orders) == 0 {
		return nil
	}

	var cancelled int
	for _, order := range orders {
		if order.Status == domain.StatusCancelled {
			cancelled++
		}
	}

	cancellationRate := float64(cancelled) / float64(len(orders)) * 100
	if cancellationRate <= r.ThresholdPct {
		return nil
	}

	return []domain.Anomaly{newAnomaly(
		domain.AnomalyCancellationSpike,
		storeID,
		domain.SeverityWarning,
		fmt.Sprintf("%.1f%% of recent orders were cancelled (threshold %.1f%%)", cancellationRate, r.ThresholdPct),
		map[string]any{
			"total_orders":          len(orders),
			"cancelled_orders":      cancelled,
			"cancellation_rate_pct": utils.RoundWithTwoDecimalPlace(cancellationRate),
		},
	)}
}

// SlowProcessingRule flags stores whose completed orders take too long on
// average. Orders without a positive parsed time are excluded from the
// average, matching the health scorer.
type SlowProcessingRule struct {
	ThresholdMinutes float64
}

func (r *SlowProcessingRule) Evaluate(storeID string, orders []domain.Order) []domain.Anomaly {
	var total float64
	var sampled int

	for _, order := range orders {
		if order.Status != domain.StatusCompleted || order.ProcessingTimeSeconds <= 0 {
			continue
		}
		total += order.ProcessingTimeSeconds
		sampled++
	}

	if sampled == 0 {
		return nil
	}

	avgMinutes := total / float64(sampled) / 60
	if avgMinutes <= r.ThresholdMinutes {
		return nil
	}

	severity := domain.SeverityWarning
	if avgMinutes > r.ThresholdMinutes*2 {
		severity = domain.SeverityCritical
	}

	return []domain.Anomaly{newAnomaly(
		domain.AnomalySlowProcessing,
		storeID,
		severity,
		fmt.Sprintf("average processing time is %.1f minutes (threshold %.1f)", avgMinutes, r.ThresholdMinutes),
		map[string]any{
			"sampled_orders":         sampled,
			"avg_processing_minutes": utils.RoundWithTwoDecimalPlace(avgMinutes),
		},
	)}
}

// HighValueOrderRule reports completed orders above the configured amount
// as a single informational finding
type HighValueOrderRule struct {
	ThresholdAmount float64
}

func (r *HighValueOrderRule) Evaluate(storeID string, orders []domain.Order) []domain.Anomaly {
	var count int
	var maxAmount float64

	for _, order := range orders {
		if order.Status != domain.StatusCompleted || order.TotalAmount <= r.ThresholdAmount {
			continue
		}
		count++
		if order.TotalAmount > maxAmount {
			maxAmount = order.TotalAmount
		}
	}

	if count == 0 {
		return nil
	}

	return []domain.Anomaly{newAnomaly(
		domain.AnomalyHighValueOrder,
		storeID,
		domain.SeverityInfo,
		fmt.Sprintf("%d completed orders above %.2f", count, r.ThresholdAmount),
		map[string]any{
			"order_count":      count,
			"max_order_amount": utils.RoundWithTwoDecimalPlace(maxAmount),
			"threshold_amount": r.ThresholdAmount,
		},
	)}
}
