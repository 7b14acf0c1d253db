package handlers

import (
	"ecovia-route-service/internal/api/dto"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/services"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

type RouteHandler struct {
	Planner *services.RoutePlanner
	Logger  *zap.Logger
}

// Plan decodes a route request, runs the aggregation and writes the route.
func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeServiceError(w, r, h.Logger, err)
			return
		}
		writeServiceError(w, r, h.Logger, fmt.Errorf("invalid json body: %w", domain.ErrInvalidInput))
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeServiceError(w, r, h.Logger, fmt.Errorf("body must contain only one JSON object: %w", domain.ErrInvalidInput))
		return
	}

	res, err := h.Planner.PlanRoute(r.Context(), req.Start.Input(), req.End.Input(), req.ModeOrDefault())
	if err != nil {
		writeServiceError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(res))
}
