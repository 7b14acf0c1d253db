package handlers

import (
	"ecovia-route-service/internal/api/dto"
	"ecovia-route-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type StationHandler struct {
	Finder          *services.StationFinder
	DefaultRadiusKm float64
	Logger          *zap.Logger
}

// List answers 200 for any valid query, with a warning when the directory failed.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseStationsQuery(r.URL.Query(), h.DefaultRadiusKm)
	if err != nil {
		writeServiceError(w, r, h.Logger, err)
		return
	}

	res := h.Finder.ListStations(r.Context(), q.Center(), q.DistanceKm)
	writeJSON(w, r, http.StatusOK, dto.NewStationsResponse(res))
}
