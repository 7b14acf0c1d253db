package services

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RoutePlanner aggregates one route request: it resolves both endpoints, asks
// the router for a single route and attaches an emissions estimate.
type RoutePlanner struct {
	resolver *CoordinateResolver
	router   ports.Router
	logger   *zap.Logger
}

func NewRoutePlanner(resolver *CoordinateResolver, router ports.Router, logger *zap.Logger) *RoutePlanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RoutePlanner{resolver: resolver, router: router, logger: logger}
}

// statusCoder is implemented by adapter errors that carry an upstream HTTP status.
type statusCoder interface {
	StatusCode() int
}

func upstreamStatus(err error) int {
	var sc statusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return 0
}

// PlanRoute validates the mode and both endpoints before any network call.
// Start and end are then resolved concurrently; routing starts only after both
// succeed. The router is called exactly once and never retried.
func (p *RoutePlanner) PlanRoute(
	ctx context.Context,
	start, end domain.LocationInput,
	mode string,
) (*domain.RouteResult, error) {
	travelMode, err := domain.ParseTravelMode(mode)
	if err != nil {
		return nil, fmt.Errorf("plan route: %w", err)
	}

	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("plan route: start: %w", err)
	}
	if err := end.Validate(); err != nil {
		return nil, fmt.Errorf("plan route: end: %w", err)
	}

	var (
		startCoord, endCoord domain.Coordinates
		startErr, endErr     error
	)

	// Errors are kept per side so that a start failure is reported even when
	// the end lookup also failed.
	var g errgroup.Group
	g.Go(func() error {
		startCoord, startErr = p.resolver.Resolve(ctx, start)
		return nil
	})
	g.Go(func() error {
		endCoord, endErr = p.resolver.Resolve(ctx, end)
		return nil
	})
	_ = g.Wait()

	if startErr != nil {
		return nil, &domain.LocationUnresolvedError{Side: domain.EndpointStart, Err: startErr}
	}
	if endErr != nil {
		return nil, &domain.LocationUnresolvedError{Side: domain.EndpointEnd, Err: endErr}
	}

	if p.router == nil {
		return nil, &domain.RoutingFailedError{Err: errors.New("no router configured")}
	}

	feature, err := p.router.Directions(ctx, startCoord, endCoord, travelMode.Profile())
	if err != nil {
		p.logger.Warn("directions failed",
			zap.String("profile", string(travelMode.Profile())),
			zap.Error(err),
		)
		return nil, &domain.RoutingFailedError{Status: upstreamStatus(err), Err: err}
	}

	if len(feature.Geometry) == 0 {
		return nil, &domain.RoutingFailedError{Err: errors.New("route geometry is empty")}
	}

	path, err := domain.PathFromLonLat(feature.Geometry)
	if err != nil {
		return nil, &domain.RoutingFailedError{Err: fmt.Errorf("route geometry: %w", err)}
	}

	emissions := domain.EstimateEmissions(feature.DistanceMeters, travelMode)

	p.logger.Debug("route planned",
		zap.String("mode", string(travelMode)),
		zap.Float64("distance_m", feature.DistanceMeters),
		zap.Int("points", len(path)),
	)

	return &domain.RouteResult{
		Start:           startCoord,
		End:             endCoord,
		Mode:            travelMode,
		DistanceMeters:  domain.RoundMetric(feature.DistanceMeters),
		DurationSeconds: domain.RoundMetric(feature.DurationSeconds),
		CO2Kg:           emissions.CO2Kg,
		CO2SavingsKg:    emissions.CO2SavingsKg,
		Path:            path,
	}, nil
}
