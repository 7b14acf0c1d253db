package dto

import (
	"bytes"
	"ecovia-route-service/internal/domain"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

const DefaultMode = "walk"

// LocationField accepts either free text or an object {"lat": .., "lon": ..}.
// Numeric members may also be sent as strings ("48.85").
type LocationField struct {
	Text   string
	Coords *domain.Coordinates
}

func (l *LocationField) UnmarshalJSON(b []byte) error {
	*l = LocationField{}

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &l.Text)
	}

	var obj map[string]any
	if err := json.Unmarshal(b, &obj); err != nil {
		return fmt.Errorf("location must be text or {lat, lon}: %w", domain.ErrInvalidInput)
	}

	latRaw, okLat := obj["lat"]
	lonRaw, okLon := obj["lon"]
	if !okLat || !okLon {
		return fmt.Errorf("location object requires lat and lon: %w", domain.ErrInvalidInput)
	}

	lat, err := toFloat(latRaw)
	if err != nil {
		return fmt.Errorf("location lat: %w", err)
	}
	lon, err := toFloat(lonRaw)
	if err != nil {
		return fmt.Errorf("location lon: %w", err)
	}

	l.Coords = &domain.Coordinates{Lat: lat, Lon: lon}
	return nil
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number: %w", n, domain.ErrInvalidInput)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected a number: %w", domain.ErrInvalidInput)
	}
}

// Input converts the field to a domain.LocationInput. An absent field becomes
// the zero LocationInput, which fails validation downstream.
func (l LocationField) Input() domain.LocationInput {
	if l.Coords != nil {
		return domain.AtCoordinates(*l.Coords)
	}
	if l.Text == "" {
		return domain.LocationInput{}
	}
	return domain.TextQuery(l.Text)
}

type RouteRequest struct {
	Start LocationField `json:"start"`
	End   LocationField `json:"end"`
	Mode  *string       `json:"mode"`
}

// ModeOrDefault returns the requested mode, or "walk" when the field is absent.
// An explicit empty string is passed through and rejected as an invalid mode.
func (r RouteRequest) ModeOrDefault() string {
	if r.Mode == nil {
		return DefaultMode
	}
	return *r.Mode
}

type PointResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RouteResponse struct {
	Start        PointResponse `json:"start"`
	End          PointResponse `json:"end"`
	Mode         string        `json:"mode"`
	DistanceM    float64       `json:"distance_m"`
	DurationS    float64       `json:"duration_s"`
	CO2Kg        float64       `json:"co2_kg"`
	CO2SavingsKg float64       `json:"co2_savings_kg"`
	Coordinates  [][]float64   `json:"coordinates"` // [lat, lon] pairs
}

func NewRouteResponse(res *domain.RouteResult) RouteResponse {
	coords := make([][]float64, 0, len(res.Path))
	for _, c := range res.Path {
		coords = append(coords, []float64{c.Lat, c.Lon})
	}

	return RouteResponse{
		Start:        PointResponse{Lat: res.Start.Lat, Lon: res.Start.Lon},
		End:          PointResponse{Lat: res.End.Lat, Lon: res.End.Lon},
		Mode:         string(res.Mode),
		DistanceM:    res.DistanceMeters,
		DurationS:    res.DurationSeconds,
		CO2Kg:        res.CO2Kg,
		CO2SavingsKg: res.CO2SavingsKg,
		Coordinates:  coords,
	}
}
