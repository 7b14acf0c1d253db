package ports

import (
	"context"
	"ecovia-route-service/internal/domain"
)

// Route returned by the routing provider.
// Geometry points are in provider order: [lon, lat].
type RouteFeature struct {
	Geometry        [][]float64
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for computing a route between two coordinates.
type Router interface {
	// Return the route from start to end for the given profile with full geometry.
	Directions(ctx context.Context, start, end domain.Coordinates, profile domain.Profile) (RouteFeature, error)
}
