package services

import (
	"context"
	"ecovia-route-service/internal/ports"
	"fmt"
)

// statusErr mimics the adapters' status errors without importing them.
type statusErr struct{ code int }

func (e statusErr) Error() string { return fmt.Sprintf("unexpected status %d", e.code) }
func (e statusErr) StatusCode() int { return e.code }

// fixedGeocoder answers every Search with the same features.
type fixedGeocoder struct {
	features []ports.GeocodeFeature
	calls    int
}

func (g *fixedGeocoder) Search(ctx context.Context, text string, size int) ([]ports.GeocodeFeature, error) {
	g.calls++
	return g.features, nil
}

func (g *fixedGeocoder) Autocomplete(ctx context.Context, text string, size int) ([]ports.GeocodeFeature, error) {
	g.calls++
	return g.features, nil
}

func strp(s string) *string { return &s }
func f64p(v float64) *float64 { return &v }
func intp(v int) *int { return &v }
func titled(s string) *ports.Titled { return &ports.Titled{Title: &s} }
