package main

import (
	"ecovia-route-service/internal/adapters/openchargemap"
	"ecovia-route-service/internal/adapters/ors"
	"ecovia-route-service/internal/config"
	"ecovia-route-service/internal/platform/obs"
	"ecovia-route-service/internal/services"
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// app holds the wired services shared by the HTTP server and the CLI commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	metrics  *obs.Metrics
	registry *prometheus.Registry

	planner     *services.RoutePlanner
	stations    *services.StationFinder
	suggestions *services.SuggestionFinder
}

// newApp is the application composition root.
// It wires the concrete adapters (ORS, OpenChargeMap) behind ports.
func newApp(cfg *config.Config) (*app, error) {
	logger, err := obs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := obs.NewMetrics(registry)
	rec := obs.NewRecorder(logger, metrics, clockwork.NewRealClock())

	orsClient, err := ors.NewClient(cfg.ORSAPIKey, ors.Options{
		BaseURL:        cfg.ORSBaseURL,
		GeocodeTimeout: cfg.GeocodeTimeout,
		RoutingTimeout: cfg.RoutingTimeout,
		Recorder:       rec,
	})
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	ocmClient := openchargemap.NewClient(openchargemap.Options{
		APIKey:    cfg.OCMAPIKey,
		BaseURL:   cfg.OCMBaseURL,
		UserAgent: cfg.OCMUserAgent,
		Timeout:   cfg.StationsTimeout,
		Recorder:  rec,
	})

	return &app{
		cfg:         cfg,
		logger:      logger,
		metrics:     metrics,
		registry:    registry,
		planner:     services.NewRoutePlanner(services.NewCoordinateResolver(orsClient), orsClient, logger),
		stations:    services.NewStationFinder(ocmClient, cfg.StationsMaxResults, logger, metrics),
		suggestions: services.NewSuggestionFinder(orsClient, cfg.SuggestionSize),
	}, nil
}
