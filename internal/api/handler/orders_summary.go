package handler

import (
	"net/http"

	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/summarizing"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// GetOrdersSummary rolls order activity up across stores. The store_id and
// platform query parameters are accepted but not applied to the
// aggregation; the rollup always spans every store.
func GetOrdersSummary(service summarizing.Summarizer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		hours, err := parseHours(r)
		if err != nil {
			logger.WithField("error", err.Error()).Warn("orders: invalid hours parameter")
			apiErrors.WriteDetail(w, http.StatusBadRequest, "invalid hours parameter")
			return
		}

		logger.WithFields(log.Fields{
			"store_id": r.URL.Query().Get("store_id"),
			"platform": r.URL.Query().Get("platform"),
		}).Info("orders: building cross-store summary")

		summary, err := service.OrdersSummary(r.Context(), hours)
		if err != nil {
			logger.WithError(err).Error("orders: summary failed")
			apiErrors.WriteError(w, err)
			return
		}

		writeJSON(w, r, summary)
	})
}
