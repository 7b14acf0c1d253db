package services

import (
	"context"
	"ecovia-route-service/internal/adapters/mock"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSuggestions(t *testing.T) {
	features := []ports.GeocodeFeature{
		{Label: strp("Paris, France"), Coordinates: []float64{2.35, 48.85}},
		{Label: strp("Broken"), Coordinates: []float64{2.35}},
		{Label: nil, Coordinates: []float64{4.83, 45.76}},
		{Label: strp("Too many"), Coordinates: []float64{1, 2, 3}},
	}

	got := MapSuggestions(features)
	require.Len(t, got, 2)
	assert.Equal(t, "Paris, France", *got[0].Label)
	assert.Equal(t, domain.Coordinates{Lat: 48.85, Lon: 2.35}, got[0].Coordinates)
	assert.Nil(t, got[1].Label)
	assert.Equal(t, domain.Coordinates{Lat: 45.76, Lon: 4.83}, got[1].Coordinates)
}

func TestSuggestionFinderSuggest(t *testing.T) {
	geo := mock.NewGeocoder(nil)
	geo.Suggestions = []ports.GeocodeFeature{
		{Label: strp("Paris"), Coordinates: []float64{2.35, 48.85}},
		{Label: strp("Parma"), Coordinates: []float64{10.33, 44.8}},
	}
	f := NewSuggestionFinder(geo, 0)

	got, err := f.Suggest(context.Background(), "Par", 0)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, geo.AutocompleteCalls())

	got, err = f.Suggest(context.Background(), "Par", 1)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSuggestionFinderEmptyText(t *testing.T) {
	geo := mock.NewGeocoder(nil)
	f := NewSuggestionFinder(geo, 5)

	for _, text := range []string{"", "   "} {
		_, err := f.Suggest(context.Background(), text, 5)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Zero(t, geo.Calls())
}

func TestSuggestionFinderUpstreamError(t *testing.T) {
	geo := mock.NewGeocoder(nil)
	geo.Err = statusErr{code: 429}
	f := NewSuggestionFinder(geo, 5)

	_, err := f.Suggest(context.Background(), "Par", 5)
	require.ErrorIs(t, err, domain.ErrUpstreamUnavailable)

	var ue *domain.UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, 429, ue.Status)
	assert.Equal(t, 1, geo.AutocompleteCalls())
}
