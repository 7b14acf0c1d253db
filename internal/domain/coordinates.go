package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinate lies on the globe.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]: %w", c.Lat, ErrInvalidInput)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]: %w", c.Lon, ErrInvalidInput)
	}
	return nil
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }

// CoordinatesFromLonLat builds a coordinate from an external [lon, lat] pair.
// The pair must hold exactly two values.
func CoordinatesFromLonLat(pair []float64) (Coordinates, error) {
	if len(pair) != 2 {
		return Coordinates{}, fmt.Errorf("expected [lon, lat] pair, got %d values", len(pair))
	}
	return Coordinates{Lon: pair[0], Lat: pair[1]}, nil
}

// PathFromLonLat converts a provider geometry from (lon, lat) ordering to
// Coordinates. Point count and order are preserved exactly.
func PathFromLonLat(points [][]float64) ([]Coordinates, error) {
	path := make([]Coordinates, 0, len(points))
	for i, pt := range points {
		c, err := CoordinatesFromLonLat(pt)
		if err != nil {
			return nil, fmt.Errorf("path point %d: %w", i, err)
		}
		path = append(path, c)
	}
	return path, nil
}

// PathToLonLat is the inverse of PathFromLonLat.
func PathToLonLat(path []Coordinates) [][]float64 {
	out := make([][]float64, 0, len(path))
	for _, c := range path {
		out = append(out, c.CoordsToList())
	}
	return out
}
