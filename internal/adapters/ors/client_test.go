package ors

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/platform/obs"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts Options) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts.BaseURL = srv.URL
	opts.HTTPClient = srv.Client()
	c, err := NewClient("test-key", opts)
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("  ", Options{})
	assert.Error(t, err)
}

func TestSearch(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("text"))
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = io.WriteString(w, `{"type":"FeatureCollection","features":[
			{"type":"Feature","geometry":{"type":"Point","coordinates":[2.3522,48.8566]},"properties":{"label":"Paris, France"}}
		]}`)
	}, Options{})

	got, err := c.Search(context.Background(), "Paris", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Paris, France", *got[0].Label)
	assert.Equal(t, []float64{2.3522, 48.8566}, got[0].Coordinates)
	assert.Equal(t, 1, calls)
}

func TestAutocompleteMissingLabel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/autocomplete", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		_, _ = io.WriteString(w, `{"features":[
			{"geometry":{"coordinates":[2.35,48.85]},"properties":{}},
			{"geometry":{"coordinates":[4.83,45.76]},"properties":{"label":"Lyon"}}
		]}`)
	}, Options{})

	got, err := c.Autocomplete(context.Background(), "Pa", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Label)
	assert.Equal(t, "Lyon", *got[1].Label)
}

func TestGeocodeStatusErrorNoRetry(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}, Options{})

	_, err := c.Search(context.Background(), "Paris", 1)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusTooManyRequests, se.StatusCode())
	assert.Contains(t, se.Body, "quota exceeded")
	assert.Equal(t, 1, calls)
}

func TestGeocodeTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, Options{GeocodeTimeout: 20 * time.Millisecond})

	_, err := c.Search(context.Background(), "Paris", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestDirections(t *testing.T) {
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	rec := obs.NewRecorder(nil, metrics, nil)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/directions/driving-car/geojson", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body directionsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, [][]float64{{2.3522, 48.8566}, {4.8357, 45.764}}, body.Coordinates)

		_, _ = io.WriteString(w, `{"type":"FeatureCollection","features":[{
			"geometry":{"type":"LineString","coordinates":[[2.3522,48.8566],[3.5,47.2],[4.8357,45.764]]},
			"properties":{"summary":{"distance":392000.4,"duration":14400.2}}
		}]}`)
	}, Options{Recorder: rec})

	got, err := c.Directions(
		context.Background(),
		domain.Coordinates{Lat: 48.8566, Lon: 2.3522},
		domain.Coordinates{Lat: 45.764, Lon: 4.8357},
		domain.ProfileDrivingCar,
	)
	require.NoError(t, err)
	assert.Len(t, got.Geometry, 3)
	assert.Equal(t, 392000.4, got.DistanceMeters)
	assert.Equal(t, 14400.2, got.DurationSeconds)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("ors.directions", "success")))
}

func TestDirectionsMissingSummary(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"features":[{"geometry":{"coordinates":[[2.35,48.85]]},"properties":{}}]}`)
	}, Options{})

	got, err := c.Directions(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1}, domain.ProfileFootWalking)
	require.NoError(t, err)
	assert.Zero(t, got.DistanceMeters)
	assert.Zero(t, got.DurationSeconds)
}

func TestDirectionsNoFeatures(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"type":"FeatureCollection","features":[]}`)
	}, Options{})

	_, err := c.Directions(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1}, domain.ProfileCyclingRegular)
	assert.ErrorIs(t, err, errNoRoute)
}

func TestDirectionsStatusError(t *testing.T) {
	metrics := obs.NewMetrics(prometheus.NewRegistry())
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"code":2010,"message":"Could not find routable point"}}`)
	}, Options{Recorder: obs.NewRecorder(nil, metrics, nil)})

	_, err := c.Directions(context.Background(), domain.Coordinates{}, domain.Coordinates{Lat: 1, Lon: 1}, domain.ProfileDrivingCar)

	var sc interface{ StatusCode() int }
	require.True(t, errors.As(err, &sc))
	assert.Equal(t, http.StatusNotFound, sc.StatusCode())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UpstreamRequests.WithLabelValues("ors.directions", "error")))
}
