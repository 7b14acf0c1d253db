package dto

import (
	"ecovia-route-service/internal/domain"
	"fmt"
	"net/url"
	"strconv"
)

type StationsQuery struct {
	Lat        *float64 `query:"lat" validate:"required,latitude"`
	Lon        *float64 `query:"lon" validate:"required,longitude"`
	DistanceKm float64  `query:"distance_km" validate:"gt=0,lte=500"`
}

// ParseStationsQuery reads lat, lon and distance_km. A missing distance_km
// falls back to defaultRadiusKm.
func ParseStationsQuery(values url.Values, defaultRadiusKm float64) (StationsQuery, error) {
	q := StationsQuery{DistanceKm: defaultRadiusKm}

	var err error
	if q.Lat, err = optionalFloat(values, "lat"); err != nil {
		return StationsQuery{}, err
	}
	if q.Lon, err = optionalFloat(values, "lon"); err != nil {
		return StationsQuery{}, err
	}
	if d, err := optionalFloat(values, "distance_km"); err != nil {
		return StationsQuery{}, err
	} else if d != nil {
		q.DistanceKm = *d
	}

	if err := Validate(q); err != nil {
		return StationsQuery{}, err
	}
	return q, nil
}

func (q StationsQuery) Center() domain.Coordinates {
	return domain.Coordinates{Lat: *q.Lat, Lon: *q.Lon}
}

func optionalFloat(values url.Values, key string) (*float64, error) {
	if !values.Has(key) {
		return nil, nil
	}
	f, err := strconv.ParseFloat(values.Get(key), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", key, values.Get(key), domain.ErrInvalidInput)
	}
	return &f, nil
}

type ConnectionResponse struct {
	PowerKW        *float64 `json:"powerKW"`
	CurrentType    *string  `json:"currentType"`
	ConnectionType *string  `json:"connectionType"`
}

type StationResponse struct {
	Name        *string              `json:"name"`
	Address     *string              `json:"address"`
	Lat         *float64             `json:"lat"`
	Lon         *float64             `json:"lon"`
	UsageCost   *string              `json:"usage_cost"`
	Operator    *string              `json:"operator"`
	Network     *string              `json:"network"`
	NumPoints   *int                 `json:"num_points"`
	Status      *string              `json:"status"`
	Connections []ConnectionResponse `json:"connections"`
}

type StationsResponse struct {
	Stations []StationResponse `json:"stations"`
	Warning  string            `json:"warning,omitempty"`
}

func NewStationsResponse(res domain.StationsResult) StationsResponse {
	out := StationsResponse{
		Stations: make([]StationResponse, 0, len(res.Stations)),
		Warning:  res.Warning,
	}
	for _, s := range res.Stations {
		conns := make([]ConnectionResponse, 0, len(s.Connections))
		for _, c := range s.Connections {
			conns = append(conns, ConnectionResponse{
				PowerKW:        c.PowerKW,
				CurrentType:    c.CurrentType,
				ConnectionType: c.ConnectorType,
			})
		}
		out.Stations = append(out.Stations, StationResponse{
			Name:        s.Name,
			Address:     s.Address,
			Lat:         s.Lat,
			Lon:         s.Lon,
			UsageCost:   s.UsageCost,
			Operator:    s.Operator,
			Network:     s.Network,
			NumPoints:   s.NumPoints,
			Status:      s.Status,
			Connections: conns,
		})
	}
	return out
}
