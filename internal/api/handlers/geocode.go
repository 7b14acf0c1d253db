package handlers

import (
	"ecovia-route-service/internal/api/dto"
	"ecovia-route-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

type GeocodeHandler struct {
	Finder *services.SuggestionFinder
	Logger *zap.Logger
}

func (h *GeocodeHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q, err := dto.ParseGeocodeQuery(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, h.Logger, err)
		return
	}

	suggestions, err := h.Finder.Suggest(r.Context(), q.Q, q.Size)
	if err != nil {
		writeServiceError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewSuggestionsResponse(suggestions))
}
