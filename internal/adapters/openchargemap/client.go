package openchargemap

import (
	"context"
	"ecovia-route-service/internal/domain"
	"ecovia-route-service/internal/platform/obs"
	"ecovia-route-service/internal/ports"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL   = "https://api.openchargemap.io/v3/poi/"
	DefaultUserAgent = "EcoVia/1.0 (+https://ecovia.local)"
)

// StatusError is a non-success HTTP answer from OpenChargeMap.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openchargemap status %d: %s", e.Code, e.Body)
}

func (e *StatusError) StatusCode() int { return e.Code }

// Client implements ports.StationDirectory using the OpenChargeMap POI API.
// The API key is optional; anonymous requests are accepted with lower limits.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	userAgent  string
	rec        *obs.Recorder
}

type Options struct {
	APIKey    string
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Recorder  *obs.Recorder
}

func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     opts.APIKey,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		rec:        opts.Recorder,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	return c
}

// NearbyStations lists stations within radiusKm of center, in directory order.
func (c *Client) NearbyStations(
	ctx context.Context,
	center domain.Coordinates,
	radiusKm float64,
	maxResults int,
) (_ []ports.StationRecord, err error) {
	defer c.rec.Time(ctx, "ocm.poi")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("output", "json")
	q.Set("latitude", strconv.FormatFloat(center.Lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(center.Lon, 'f', -1, 64))
	q.Set("distance", strconv.FormatFloat(radiusKm, 'f', -1, 64))
	q.Set("distanceunit", "KM")
	q.Set("maxresults", strconv.Itoa(maxResults))
	if c.apiKey != "" {
		q.Set("key", c.apiKey)
	}
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var records []ports.StationRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode poi response: %w", err)
	}

	return records, nil
}
