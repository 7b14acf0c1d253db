package api

import (
	"ecovia-route-service/internal/api/handlers"
	"ecovia-route-service/internal/platform/obs"
	"ecovia-route-service/internal/services"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps are the services and ambient collaborators the HTTP surface needs.
type Deps struct {
	Planner     *services.RoutePlanner
	Stations    *services.StationFinder
	Suggestions *services.SuggestionFinder

	DefaultRadiusKm    float64
	CORSAllowedOrigins []string

	Logger   *zap.Logger
	Metrics  *obs.Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	gatherer := d.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	routeHandler := &handlers.RouteHandler{Planner: d.Planner, Logger: logger}
	stationHandler := &handlers.StationHandler{
		Finder:          d.Stations,
		DefaultRadiusKm: d.DefaultRadiusKm,
		Logger:          logger,
	}
	geocodeHandler := &handlers.GeocodeHandler{Finder: d.Suggestions, Logger: logger}

	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware(logger, d.Metrics), recoveryMiddleware(logger))

	// Preflight requests only need a route when CORS is enabled.
	get, post := []string{http.MethodGet}, []string{http.MethodPost}
	if len(d.CORSAllowedOrigins) > 0 {
		r.Use(corsMiddleware(d.CORSAllowedOrigins))
		get = append(get, http.MethodOptions)
		post = append(post, http.MethodOptions)
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/route", routeHandler.Plan).Methods(post...)
	api.HandleFunc("/geocode", geocodeHandler.Suggest).Methods(get...)
	api.HandleFunc("/charging-stations", stationHandler.List).Methods(get...)

	return r
}
