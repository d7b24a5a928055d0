package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/detecting"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// DetectAnomalies runs the rule set over recent orders, for one store or
// for every store when no store_id filter is given
func DetectAnomalies(service detecting.Detector) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := r.URL.Query().Get("store_id")
		logger.WithField("store_id", storeID).Info("anomalies: running detection")

		anomalies, err := service.Detect(r.Context(), storeID)
		if err != nil {
			logger.WithError(err).Error("anomalies: detection failed")
			apiErrors.WriteError(w, err)
			return
		}

		writeJSON(w, r, anomalies)
	})
}
