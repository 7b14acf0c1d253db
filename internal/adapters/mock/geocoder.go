package mock

import (
	"context"
	"ecovia-route-service/internal/ports"
	"strings"
	"sync/atomic"
)

type Place struct {
	Text     string
	Label    string
	Lat, Lon float64
}

// Geocoder is an in-memory ports.Geocoder that counts its calls.
// Search matches the text case-insensitively against known places; unknown
// text yields no features. Err, when set, fails every call.
type Geocoder struct {
	places      map[string]Place
	Suggestions []ports.GeocodeFeature
	Err         error

	searchCalls       atomic.Int64
	autocompleteCalls atomic.Int64
}

func NewGeocoder(places []Place) *Geocoder {
	m := make(map[string]Place, len(places))
	for _, p := range places {
		m[strings.ToLower(p.Text)] = p
	}
	return &Geocoder{places: m}
}

func (g *Geocoder) Search(ctx context.Context, text string, size int) ([]ports.GeocodeFeature, error) {
	g.searchCalls.Add(1)
	if g.Err != nil {
		return nil, g.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, ok := g.places[strings.ToLower(text)]
	if !ok || size < 1 {
		return []ports.GeocodeFeature{}, nil
	}
	label := p.Label
	return []ports.GeocodeFeature{{Label: &label, Coordinates: []float64{p.Lon, p.Lat}}}, nil
}

func (g *Geocoder) Autocomplete(ctx context.Context, text string, size int) ([]ports.GeocodeFeature, error) {
	g.autocompleteCalls.Add(1)
	if g.Err != nil {
		return nil, g.Err
	}
	if size < len(g.Suggestions) {
		return g.Suggestions[:size], nil
	}
	return g.Suggestions, nil
}

func (g *Geocoder) SearchCalls() int { return int(g.searchCalls.Load()) }
func (g *Geocoder) AutocompleteCalls() int { return int(g.autocompleteCalls.Load()) }
func (g *Geocoder) Calls() int { return g.SearchCalls() + g.AutocompleteCalls() }
