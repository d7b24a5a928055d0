package detecting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
)

func TestFailureRateRule(t *testing.T) {
	rule := &FailureRateRule{ThresholdPct: 25}

	tests := []struct {
		name     string
		orders   []domain.Order
		findings int
		severity string
	}{
		{
			name:     "no orders",
			orders:   nil,
			findings: 0,
		},
		{
			name: "below threshold",
			orders: []domain.Order{
				{Status: domain.StatusCompleted},
				{Status: domain.StatusCompleted},
				{Status: domain.StatusCompleted},
				{Status: domain.StatusFailed},
			},
			findings: 0,
		},
		{
			name: "above threshold is a warning",
			orders: []domain.Order{
				{Status: domain.StatusCompleted},
				{Status: domain.StatusFailed},
			},
			findings: 1,
			severity: domain.SeverityWarning,
		},
		{
			name: "above twice the threshold escalates to critical",
			orders: []domain.Order{
				{Status: domain.StatusFailed},
				{Status: domain.StatusFailed},
				{Status: domain.StatusFailed},
				{Status: domain.StatusCompleted},
			},
			findings: 1,
			severity: domain.SeverityCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			anomalies := rule.Evaluate("s1", tt.orders)
			require.Len(t, anomalies, tt.findings)

			if tt.findings > 0 {
				assert.Equal(t, domain.AnomalyHighFailureRate, anomalies[0].Type)
				assert.Equal(t, "s1", anomalies[0].StoreID)
				assert.Equal(t, tt.severity, anomalies[0].Severity)
				assert.NotEmpty(t, anomalies[0].ID)
			}
		})
	}
}

func TestCancellationSpikeRule(t *testing.T) {
	rule := &CancellationSpikeRule{ThresholdPct: 15}

	noSpike := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCancelled},
	})
	assert.Empty(t, noSpike)

	spike := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted},
		{Status: domain.StatusCancelled},
	})
	require.Len(t, spike, 1)
	assert.Equal(t, domain.AnomalyCancellationSpike, spike[0].Type)
	assert.Equal(t, domain.SeverityWarning, spike[0].Severity)
	assert.Equal(t, 50.0, spike[0].Evidence["cancellation_rate_pct"])
}

func TestSlowProcessingRule(t *testing.T) {
	rule := &SlowProcessingRule{ThresholdMinutes: 30}

	// Failed orders and unparsable times never enter the average, so this
	// store has no usable sample at all.
	noSample := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusFailed, ProcessingTimeSeconds: 9000},
		{Status: domain.StatusCompleted, ProcessingTimeSeconds: 0},
	})
	assert.Empty(t, noSample)

	fast := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted, ProcessingTimeSeconds: 600},
	})
	assert.Empty(t, fast)

	// 40 minutes average: above 30 but below 60, still a warning
	slow := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted, ProcessingTimeSeconds: 2400},
	})
	require.Len(t, slow, 1)
	assert.Equal(t, domain.AnomalySlowProcessing, slow[0].Type)
	assert.Equal(t, domain.SeverityWarning, slow[0].Severity)
	assert.Equal(t, 40.0, slow[0].Evidence["avg_processing_minutes"])

	glacial := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted, ProcessingTimeSeconds: 4200},
	})
	require.Len(t, glacial, 1)
	assert.Equal(t, domain.SeverityCritical, glacial[0].Severity)
}

func TestHighValueOrderRule(t *testing.T) {
	rule := &HighValueOrderRule{ThresholdAmount: 500}

	nothing := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted, TotalAmount: 499.99},
		{Status: domain.StatusFailed, TotalAmount: 1000},
	})
	assert.Empty(t, nothing)

	// Two qualifying orders collapse into one informational finding
	found := rule.Evaluate("s1", []domain.Order{
		{Status: domain.StatusCompleted, TotalAmount: 750},
		{Status: domain.StatusCompleted, TotalAmount: 1200.555},
		{Status: domain.StatusCompleted, TotalAmount: 20},
	})
	require.Len(t, found, 1)
	assert.Equal(t, domain.AnomalyHighValueOrder, found[0].Type)
	assert.Equal(t, domain.SeverityInfo, found[0].Severity)
	assert.Equal(t, 2, found[0].Evidence["order_count"])
	assert.Equal(t, 1200.56, found[0].Evidence["max_order_amount"])
}
