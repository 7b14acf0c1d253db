package ors

import (
	"bytes"
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/ports"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var errNoRoute = errors.New("directions response contains no route feature")

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
}

type directionsResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Summary struct {
				Distance float64 `json:"distance"`
				Duration float64 `json:"duration"`
			} `json:"summary"`
		} `json:"properties"`
	} `json:"features"`
}

// Directions fetches a GeoJSON route between two coordinates with the
// OpenRouteService directions endpoint. A summary without distance or
// duration yields zero for that value.
func (c *Client) Directions(
	ctx context.Context,
	start domain.Coordinates,
	end domain.Coordinates,
	profile domain.Profile,
) (_ ports.RouteFeature, err error) {
	defer c.rec.Time(ctx, "ors.directions")(&err)

	if profile == "" {
		return ports.RouteFeature{}, errors.New("directions: profile must be non-empty")
	}

	ctx, cancel := context.WithTimeout(ctx, c.routingTimeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/v2/directions/%s/geojson", c.baseURL, url.PathEscape(string(profile)))

	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{start.CoordsToList(), end.CoordsToList()},
	})
	if err != nil {
		return ports.RouteFeature{}, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return ports.RouteFeature{}, fmt.Errorf("directions request: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return ports.RouteFeature{}, fmt.Errorf("directions request failed: %w", err)
	}
	defer resp.Body.Close()

	var dr directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&dr); err != nil {
		return ports.RouteFeature{}, fmt.Errorf("decode directions response: %w", err)
	}

	if len(dr.Features) == 0 {
		return ports.RouteFeature{}, errNoRoute
	}

	f := dr.Features[0]
	return ports.RouteFeature{
		Geometry:        f.Geometry.Coordinates,
		DistanceMeters:  f.Properties.Summary.Distance,
		DurationSeconds: f.Properties.Summary.Duration,
	}, nil
}
