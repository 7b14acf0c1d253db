package mock

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"sync/atomic"
)

// StationDirectory is an in-memory ports.StationDirectory.
type StationDirectory struct {
	Records []ports.StationRecord
	Err     error

	LastCenter     domain.Coordinates
	LastRadiusKm   float64
	LastMaxResults int

	calls atomic.Int64
}

func (d *StationDirectory) NearbyStations(
	ctx context.Context,
	center domain.Coordinates,
	radiusKm float64,
	maxResults int,
) ([]ports.StationRecord, error) {
	d.calls.Add(1)
	d.LastCenter, d.LastRadiusKm, d.LastMaxResults = center, radiusKm, maxResults
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Records, nil
}

func (d *StationDirectory) Calls() int { return int(d.calls.Load()) }
