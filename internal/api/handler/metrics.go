package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/aggregating"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// GetStoreMetrics computes performance metrics for one store from fresh
// upstream data. Upstream HTTP errors keep their status code; anything
// else is a 500.
func GetStoreMetrics(service aggregating.Aggregator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		logger.WithField("store_id", storeID).Info("metrics: computing store metrics")

		metrics, err := service.StoreMetrics(r.Context(), storeID)
		if err != nil {
			apiErrors.WriteError(w, err)
			return
		}

		writeJSON(w, r, metrics)
	})
}
