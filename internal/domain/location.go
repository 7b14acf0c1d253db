package domain

import (
	"fmt"
	"strings"
)

// LocationInput is a client-supplied location: either free text to geocode or
// an explicit coordinate. The zero value means "not provided".
type LocationInput struct {
	query string
	coord *Coordinates
}

// TextQuery wraps free text that must be geocoded.
func TextQuery(q string) LocationInput { return LocationInput{query: q} }

// AtCoordinates wraps an explicit coordinate.
func AtCoordinates(c Coordinates) LocationInput { return LocationInput{coord: &c} }

// Coordinates returns the explicit coordinate, if the input carries one.
func (l LocationInput) Coordinates() (Coordinates, bool) {
	if l.coord == nil {
		return Coordinates{}, false
	}
	return *l.coord, true
}

// Query returns the trimmed text query.
func (l LocationInput) Query() string { return strings.TrimSpace(l.query) }

func (l LocationInput) String() string {
	if l.coord != nil {
		return fmt.Sprintf("(%g, %g)", l.coord.Lat, l.coord.Lon)
	}
	return fmt.Sprintf("%q", l.Query())
}

// Validate checks the input without touching the network: coordinates must be
// in range and text must be non-blank.
func (l LocationInput) Validate() error {
	if l.coord != nil {
		return l.coord.Validate()
	}
	if l.Query() == "" {
		return fmt.Errorf("location text is empty: %w", ErrInvalidInput)
	}
	return nil
}
