package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-dashboard-api/infrastructure/integrator/mockapi"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// GetStoreDashboard returns the combined store + orders + metrics view.
// A failed store fetch is a 404; a failed order fetch degrades to an
// empty order list inside the service.
func GetStoreDashboard(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		logger.WithField("store_id", storeID).Info("dashboard: building store view")

		dashboard, err := service.StoreDashboard(r.Context(), storeID)
		if err != nil {
			apiErrors.WriteDetail(w, http.StatusNotFound, err.Error())
			return
		}

		writeJSON(w, r, dashboard)
	})
}

// GetDashboardStores proxies the upstream store list without reshaping it
func GetDashboardStores(client mockapi.Client) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: proxying store list")

		payload, err := client.Stores(r.Context())
		if err != nil {
			logger.WithError(err).Error("dashboard: store list fetch failed")
			apiErrors.WriteError(w, err)
			return
		}

		writeJSON(w, r, payload)
	})
}

// GetDashboardSummary aggregates order activity across every store
func GetDashboardSummary(service summarizing.Summarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		hours, err := parseHours(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("dashboard: invalid hours parameter")
			apiErrors.WriteDetail(w, http.StatusBadRequest, "invalid hours parameter")
			return
		}

		summary, err := service.DashboardSummary(r.Context(), hours)
		if err != nil {
			logger.WithError(err).Error("dashboard: summary failed")
			apiErrors.WriteDetail(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, r, summary)
	})
}
