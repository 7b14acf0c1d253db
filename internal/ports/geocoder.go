package ports

import "context"

// One candidate returned by a geocoding lookup.
// Coordinates are in provider order: [lon, lat].
type GeocodeFeature struct {
	Label       *string
	Coordinates []float64
}

// Contract for turning free text into candidate locations.
type Geocoder interface {
	// Return up to size best matches for text, best first.
	Search(ctx context.Context, text string, size int) ([]GeocodeFeature, error)
	// Return up to size autocomplete candidates for partial text.
	Autocomplete(ctx context.Context, text string, size int) ([]GeocodeFeature, error)
}
