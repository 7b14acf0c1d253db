package services

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"fmt"
)

// CoordinateResolver turns a LocationInput into a single coordinate.
type CoordinateResolver struct {
	geocoder ports.Geocoder
}

func NewCoordinateResolver(geocoder ports.Geocoder) *CoordinateResolver {
	return &CoordinateResolver{geocoder: geocoder}
}

// Resolve returns explicit coordinates unchanged (after range validation) and
// geocodes text with a single top-1 lookup. Any geocoder failure or an empty
// answer is reported as domain.ErrResolutionFailed; nothing is retried.
func (r *CoordinateResolver) Resolve(ctx context.Context, in domain.LocationInput) (domain.Coordinates, error) {
	if c, ok := in.Coordinates(); ok {
		if err := c.Validate(); err != nil {
			return domain.Coordinates{}, fmt.Errorf("resolve location: %w", err)
		}
		return c, nil
	}

	q := in.Query()
	if q == "" {
		return domain.Coordinates{}, fmt.Errorf("resolve location: text is empty: %w", domain.ErrInvalidInput)
	}

	if r.geocoder == nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: no geocoder configured: %w", q, domain.ErrResolutionFailed)
	}

	features, err := r.geocoder.Search(ctx, q, 1)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w: %w", q, domain.ErrResolutionFailed, err)
	}

	if len(features) == 0 {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: no geocode results: %w", q, domain.ErrResolutionFailed)
	}

	c, err := domain.CoordinatesFromLonLat(features[0].Coordinates)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: %w: %w", q, domain.ErrResolutionFailed, err)
	}
	// An out-of-range answer is the geocoder's fault, not the client's.
	if c.Validate() != nil {
		return domain.Coordinates{}, fmt.Errorf("resolve %q: geocoder returned (%g, %g): %w", q, c.Lat, c.Lon, domain.ErrResolutionFailed)
	}

	return c, nil
}
