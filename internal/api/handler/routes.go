package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/restaurant-dashboard-api/internal/config"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/scoring"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/summarizing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics(service aggregating.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/api/metrics/store/:store_id",
			Method:  http.MethodGet,
			Handler: GetStoreMetrics(service),
		},
	}
}

func Dashboard(
	aggregator aggregating.Aggregator,
	summarizer summarizing.Summarizer,
	client mockapi.Client,
) []router.Route {
	return []router.Route{
		{
			Path:    "/api/dashboard/store/:store_id",
			Method:  http.MethodGet,
			Handler: GetStoreDashboard(aggregator),
		},
		{
			Path:    "/api/dashboard/stores",
			Method:  http.MethodGet,
			Handler: GetDashboardStores(client),
		},
		{
			Path:    "/api/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(summarizer),
		},
	}
}

func HealthScores(service scoring.Scorer) []router.Route {
	return []router.Route{
		{
			Path:    "/api/health-score/:store_id",
			Method:  http.MethodGet,
			Handler: GetHealthScore(service),
		},
	}
}

func Orders(summarizer summarizing.Summarizer, client mockapi.Client, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/api/orders/summary",
			Method:  http.MethodGet,
			Handler: GetOrdersSummary(summarizer),
		},
		{
			Path:    "/ws/orders",
			Method:  http.MethodGet,
			Handler: OrdersFeed(client, cfg),
		},
	}
}

func Anomalies(service detecting.Detector) []router.Route {
	return []router.Route{
		{
			Path:    "/api/anomalies/detect",
			Method:  http.MethodGet,
			Handler: DetectAnomalies(service),
		},
	}
}
