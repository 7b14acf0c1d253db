package ors

import (
	"ecovia-route-service/internal/platform/obs"
	"errors"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "https://api.openrouteservice.org"

// Client implements ports.Geocoder and ports.Router using OpenRouteService.
//
// Every call is issued exactly once (no retries) and bounded by the timeout of
// its operation family. The client is safe for concurrent use.
type Client struct {
	session        *http.Client
	apiKey         string
	baseURL        string
	geocodeTimeout time.Duration
	routingTimeout time.Duration
	rec            *obs.Recorder
}

type Options struct {
	BaseURL        string
	GeocodeTimeout time.Duration
	RoutingTimeout time.Duration
	HTTPClient     *http.Client
	Recorder       *obs.Recorder
}

func NewClient(apiKey string, opts Options) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("ORS api key is empty")
	}

	c := &Client{
		session:        opts.HTTPClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(opts.BaseURL, "/"),
		geocodeTimeout: opts.GeocodeTimeout,
		routingTimeout: opts.RoutingTimeout,
		rec:            opts.Recorder,
	}
	if c.session == nil {
		c.session = &http.Client{}
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.geocodeTimeout <= 0 {
		c.geocodeTimeout = 20 * time.Second
	}
	if c.routingTimeout <= 0 {
		c.routingTimeout = 20 * time.Second
	}

	return c, nil
}
