package services

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"errors"
	"fmt"
	"strings"
)

const DefaultSuggestionSize = 5

// SuggestionFinder returns autocomplete candidates for partial place names.
type SuggestionFinder struct {
	geocoder    ports.Geocoder
	defaultSize int
}

func NewSuggestionFinder(geocoder ports.Geocoder, defaultSize int) *SuggestionFinder {
	if defaultSize <= 0 {
		defaultSize = DefaultSuggestionSize
	}
	return &SuggestionFinder{geocoder: geocoder, defaultSize: defaultSize}
}

// Suggest makes one autocomplete call. Blank text is rejected without a call and
// a non-positive limit falls back to the finder's default size.
func (f *SuggestionFinder) Suggest(ctx context.Context, text string, limit int) ([]domain.GeocodeSuggestion, error) {
	q := strings.TrimSpace(text)
	if q == "" {
		return nil, fmt.Errorf("suggest: text is empty: %w", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = f.defaultSize
	}

	if f.geocoder == nil {
		return nil, &domain.UpstreamError{Err: errors.New("no geocoder configured")}
	}

	features, err := f.geocoder.Autocomplete(ctx, q, limit)
	if err != nil {
		return nil, &domain.UpstreamError{Status: upstreamStatus(err), Err: fmt.Errorf("suggest %q: %w", q, err)}
	}

	return MapSuggestions(features), nil
}

// MapSuggestions keeps the features carrying exactly one [lon, lat] pair, in order.
func MapSuggestions(features []ports.GeocodeFeature) []domain.GeocodeSuggestion {
	out := make([]domain.GeocodeSuggestion, 0, len(features))
	for _, f := range features {
		c, err := domain.CoordinatesFromLonLat(f.Coordinates)
		if err != nil {
			continue
		}
		out = append(out, domain.GeocodeSuggestion{Label: f.Label, Coordinates: c})
	}
	return out
}
