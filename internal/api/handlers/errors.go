package handlers

import (
	"ecovia-route-service/internal/domain"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeInvalidMode         = "INVALID_MODE"
	CodeLocationUnresolved  = "LOCATION_UNRESOLVED"
	CodeRoutingFailed       = "ROUTING_FAILED"
	CodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	CodeInternal            = "INTERNAL"
)

// apiError is the client-facing form of a service error.
type apiError struct {
	Status  int
	Code    string
	Message string
}

func classify(err error) apiError {
	var (
		lue *domain.LocationUnresolvedError
		ue  *domain.UpstreamError
	)

	switch {
	case errors.Is(err, domain.ErrInvalidMode):
		return apiError{http.StatusBadRequest, CodeInvalidMode, "Invalid mode. Use 'walk', 'cycle', or 'drive'"}
	case errors.As(err, &lue):
		return apiError{http.StatusUnprocessableEntity, CodeLocationUnresolved, fmt.Sprintf("Could not resolve %s location", lue.Side)}
	case errors.Is(err, domain.ErrInvalidInput):
		return apiError{http.StatusBadRequest, CodeInvalidInput, err.Error()}
	case errors.Is(err, domain.ErrRoutingFailed):
		return apiError{http.StatusBadGateway, CodeRoutingFailed, "Routing request failed"}
	case errors.As(err, &ue):
		status := http.StatusBadGateway
		if ue.Status >= 400 {
			status = ue.Status
		}
		return apiError{status, CodeUpstreamUnavailable, "Geocoding request failed"}
	default:
		return apiError{http.StatusInternalServerError, CodeInternal, "internal server error"}
	}
}

// writeServiceError maps err onto a status and code. Details of server-side
// failures are logged, never returned.
func writeServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	ae := classify(err)
	if logger == nil {
		logger = zap.L()
	}

	fields := []zap.Field{
		zap.String("path", r.URL.Path),
		zap.Int("status", ae.Status),
		zap.String("code", ae.Code),
		zap.Error(err),
	}
	if ae.Status >= 500 {
		logger.Error("request failed", fields...)
	} else {
		logger.Info("request rejected", fields...)
	}

	WriteError(w, r, ae.Status, ae.Code, ae.Message)
}
