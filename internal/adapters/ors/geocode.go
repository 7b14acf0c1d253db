package ors

import (
	"context"
	"ecovia-route-service/internal/ports"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
		Properties struct {
			Label *string `json:"label"`
		} `json:"properties"`
	} `json:"features"`
}

// Search resolves text with /geocode/search, best match first.
func (c *Client) Search(ctx context.Context, text string, size int) (_ []ports.GeocodeFeature, err error) {
	defer c.rec.Time(ctx, "ors.geocode.search")(&err)
	return c.geocode(ctx, "/geocode/search", text, size)
}

// Autocomplete returns candidates from /geocode/autocomplete.
func (c *Client) Autocomplete(ctx context.Context, text string, size int) (_ []ports.GeocodeFeature, err error) {
	defer c.rec.Time(ctx, "ors.geocode.autocomplete")(&err)
	return c.geocode(ctx, "/geocode/autocomplete", text, size)
}

func (c *Client) geocode(ctx context.Context, path, text string, size int) ([]ports.GeocodeFeature, error) {
	ctx, cancel := context.WithTimeout(ctx, c.geocodeTimeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("text", text)
	q.Set("size", strconv.Itoa(size))
	req.URL.RawQuery = q.Encode()

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("execute geocode request: %w", err)
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}

	out := make([]ports.GeocodeFeature, 0, len(decoded.Features))
	for _, f := range decoded.Features {
		out = append(out, ports.GeocodeFeature{
			Label:       f.Properties.Label,
			Coordinates: f.Geometry.Coordinates,
		})
	}

	return out, nil
}
