package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi/mocks"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func orderPayload(orders ...map[string]any) map[string]any {
	wrapped := make([]any, 0, len(orders))
	for _, order := range orders {
		wrapped = append(wrapped, order)
	}
	return map[string]any{"orders": wrapped}
}

func TestHealthScoreFallbackOnFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(nil, &mockapi.UpstreamUnavailableError{URL: "http://upstream", Err: context.DeadlineExceeded})

	score := service.HealthScore(context.Background(), "s1")
	require.NotNil(t, score)

	assert.Equal(t, "s1", score.StoreID)
	assert.Equal(t, 60, score.Score)
	assert.Equal(t, domain.HealthStatusWarning, score.Status)
	assert.Equal(t, map[string]int{
		domain.FactorSuccessRate:    50,
		domain.FactorProcessingTime: 60,
		domain.FactorRevenueTrend:   60,
	}, score.Factors)
	assert.False(t, score.Timestamp.IsZero())
}

func TestHealthScoreFallbackOnEmptyOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	// Fetch succeeded but there is nothing to score: the revenue_trend
	// factor drops to 0 instead of the fetch-failure 60.
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(map[string]any{"orders": []any{}}, nil)

	score := service.HealthScore(context.Background(), "s1")
	require.NotNil(t, score)

	assert.Equal(t, 60, score.Score)
	assert.Equal(t, domain.HealthStatusWarning, score.Status)
	assert.Equal(t, map[string]int{
		domain.FactorSuccessRate:    50,
		domain.FactorProcessingTime: 60,
		domain.FactorRevenueTrend:   0,
	}, score.Factors)
}

func TestHealthScorePerfectStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	// 10 completed orders at 10 minutes each: every factor maxes out.
	orders := make([]map[string]any, 0, 10)
	for i := 0; i < 10; i++ {
		orders = append(orders, map[string]any{
			"status":                  "completed",
			"processing_time_seconds": 600.0,
			"total_amount":            20.0,
		})
	}

	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(orderPayload(orders...), nil)

	score := service.HealthScore(context.Background(), "s1")
	require.NotNil(t, score)

	assert.Equal(t, 100, score.Score)
	assert.Equal(t, domain.HealthStatusHealthy, score.Status)
	assert.Equal(t, map[string]int{
		domain.FactorSuccessRate:    100,
		domain.FactorProcessingTime: 100,
		domain.FactorRevenueTrend:   100,
	}, score.Factors)
}

func TestHealthScoreStrugglingStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	// 1 completed out of 2 at 40 minutes: success 50, processing 40,
	// revenue 10 -> overall 50*0.5 + 40*0.3 + 10*0.2 = 39.0, critical.
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(orderPayload(
			map[string]any{"status": "completed", "processing_time_seconds": 2400.0, "total_amount": 50.0},
			map[string]any{"status": "failed"},
		), nil)

	score := service.HealthScore(context.Background(), "s1")
	require.NotNil(t, score)

	assert.Equal(t, 39, score.Score)
	assert.Equal(t, domain.HealthStatusCritical, score.Status)
	assert.Equal(t, map[string]int{
		domain.FactorSuccessRate:    50,
		domain.FactorProcessingTime: 40,
		domain.FactorRevenueTrend:   10,
	}, score.Factors)
}

func TestHealthScoreIgnoresNonPositiveProcessingTimes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	// Orders without a usable processing time fall back to the flat 50
	// factor instead of dragging the average to zero.
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(orderPayload(
			map[string]any{"status": "completed", "total_amount": 10.0},
			map[string]any{"status": "completed", "processing_time_seconds": "garbage", "total_amount": 10.0},
		), nil)

	score := service.HealthScore(context.Background(), "s1")
	require.NotNil(t, score)

	assert.Equal(t, 50, score.Factors[domain.FactorProcessingTime])
	assert.Equal(t, 100, score.Factors[domain.FactorSuccessRate])
	assert.Equal(t, 20, score.Factors[domain.FactorRevenueTrend])
}
