package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/restaurant-dashboard-api/internal/usecases/scoring"
	"github.com/vfg2006/restaurant-dashboard-api/pkg/log"
)

// GetHealthScore rates one store's recent performance. This endpoint never
// fails: the scorer degrades to a fallback score on any upstream problem,
// so the response is always a 200 with a valid score object.
func GetHealthScore(service scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		storeID := httprouter.ParamsFromContext(r.Context()).ByName("store_id")
		logger.WithField("store_id", storeID).Info("health-score: scoring store")

		writeJSON(w, r, service.HealthScore(r.Context(), storeID))
	})
}
