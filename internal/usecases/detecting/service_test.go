package detecting

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi/mocks"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Summary.MaxConcurrentFetches = 2
	cfg.Anomaly = config.Anomaly{
		FailureRatePct:        25,
		CancellationRatePct:   15,
		SlowProcessingMinutes: 30,
		HighValueAmount:       500,
	}
	return cfg
}

func TestDetectSingleStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient, testConfig())

	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(map[string]any{"orders": []any{
			map[string]any{"status": "completed", "total_amount": 750.0},
			map[string]any{"status": "failed"},
		}}, nil)

	anomalies, err := service.Detect(context.Background(), "s1")
	require.NoError(t, err)

	// 50% failure rate and one high value order
	require.Len(t, anomalies, 2)
	assert.Equal(t, domain.AnomalyHighFailureRate, anomalies[0].Type)
	assert.Equal(t, domain.AnomalyHighValueOrder, anomalies[1].Type)
	for _, anomaly := range anomalies {
		assert.Equal(t, "s1", anomaly.StoreID)
	}
}

func TestDetectSingleStoreFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient, testConfig())

	upstreamErr := &mockapi.UpstreamStatusError{Status: 502, URL: "http://upstream"}
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(nil, upstreamErr)

	_, err := service.Detect(context.Background(), "s1")
	require.Error(t, err)

	var statusErr *mockapi.UpstreamStatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestDetectAcrossStoresSkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient, testConfig())

	mockClient.EXPECT().
		Stores(gomock.Any()).
		Return(map[string]any{"stores": []any{
			map[string]any{"id": "s1"},
			map[string]any{"id": "s2"},
			map[string]any{"id": "s3"},
		}}, nil)

	// s1 is unhealthy, s2 is unreachable, s3 is clean
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(map[string]any{"orders": []any{
			map[string]any{"status": "failed"},
			map[string]any{"status": "failed"},
		}}, nil)
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s2").
		Return(nil, &mockapi.UpstreamUnavailableError{URL: "http://upstream", Err: context.DeadlineExceeded})
	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s3").
		Return(map[string]any{"orders": []any{
			map[string]any{"status": "completed", "total_amount": 20.0, "processing_time_seconds": 300.0},
		}}, nil)

	anomalies, err := service.Detect(context.Background(), "")
	require.NoError(t, err)

	require.Len(t, anomalies, 1)
	assert.Equal(t, "s1", anomalies[0].StoreID)
	assert.Equal(t, domain.AnomalyHighFailureRate, anomalies[0].Type)
	assert.Equal(t, domain.SeverityCritical, anomalies[0].Severity)
}

func TestDetectAcrossStoresStoreListFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient, testConfig())

	mockClient.EXPECT().
		Stores(gomock.Any()).
		Return(nil, &mockapi.UpstreamUnavailableError{URL: "http://upstream", Err: context.DeadlineExceeded})

	_, err := service.Detect(context.Background(), "")
	assert.Error(t, err)
}

func TestDetectHealthyStoreHasNoFindings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient, testConfig())

	mockClient.EXPECT().
		StoreOrders(gomock.Any(), "s1").
		Return(map[string]any{"orders": []any{
			map[string]any{"status": "completed", "total_amount": 25.0, "processing_time_seconds": 600.0},
			map[string]any{"status": "completed", "total_amount": 18.0, "processing_time_seconds": 480.0},
		}}, nil)

	anomalies, err := service.Detect(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, anomalies)
}
