package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// OpenRouteService.
	ORSAPIKey      string
	ORSBaseURL     string
	GeocodeTimeout time.Duration
	RoutingTimeout time.Duration
	SuggestionSize int

	// OpenChargeMap. The key is optional.
	OCMAPIKey          string
	OCMBaseURL         string
	OCMUserAgent       string
	StationsTimeout    time.Duration
	StationsMaxResults int
	DefaultRadiusKm    float64

	CORSAllowedOrigins []string
}

var defaults = map[string]any{
	"HTTP_ADDR":            ":8080",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"SHUTDOWN_TIMEOUT":     "10s",
	"ORS_BASE_URL":         "https://api.openrouteservice.org",
	"GEOCODE_TIMEOUT":      "20s",
	"ROUTING_TIMEOUT":      "20s",
	"SUGGESTION_SIZE":      5,
	"OCM_BASE_URL":         "https://api.openchargemap.io/v3/poi/",
	"OCM_USER_AGENT":       "EcoVia/1.0 (+https://ecovia.local)",
	"STATIONS_TIMEOUT":     "30s",
	"STATIONS_MAX_RESULTS": 50,
	"DEFAULT_RADIUS_KM":    10.0,
	"CORS_ALLOWED_ORIGINS": "",
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	cfg := &Config{
		HTTPAddr:           v.GetString("HTTP_ADDR"),
		LogLevel:           v.GetString("LOG_LEVEL"),
		LogFormat:          v.GetString("LOG_FORMAT"),
		ORSAPIKey:          strings.TrimSpace(v.GetString("ORS_API_KEY")),
		ORSBaseURL:         v.GetString("ORS_BASE_URL"),
		SuggestionSize:     v.GetInt("SUGGESTION_SIZE"),
		OCMAPIKey:          strings.TrimSpace(v.GetString("OCM_API_KEY")),
		OCMBaseURL:         v.GetString("OCM_BASE_URL"),
		OCMUserAgent:       v.GetString("OCM_USER_AGENT"),
		StationsMaxResults: v.GetInt("STATIONS_MAX_RESULTS"),
		DefaultRadiusKm:    v.GetFloat64("DEFAULT_RADIUS_KM"),
		CORSAllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
	if cfg.OCMAPIKey == "" {
		cfg.OCMAPIKey = strings.TrimSpace(v.GetString("OPENCHARGEMAP_API_KEY"))
	}

	var err error
	if cfg.ShutdownTimeout, err = positiveDuration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.GeocodeTimeout, err = positiveDuration(v, "GEOCODE_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.RoutingTimeout, err = positiveDuration(v, "ROUTING_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.StationsTimeout, err = positiveDuration(v, "STATIONS_TIMEOUT"); err != nil {
		return nil, err
	}

	if cfg.ORSAPIKey == "" {
		return nil, errors.New("ORS_API_KEY is required")
	}
	if cfg.SuggestionSize <= 0 {
		return nil, errors.New("invalid SUGGESTION_SIZE")
	}
	if cfg.StationsMaxResults <= 0 {
		return nil, errors.New("invalid STATIONS_MAX_RESULTS")
	}
	if cfg.DefaultRadiusKm <= 0 {
		return nil, errors.New("invalid DEFAULT_RADIUS_KM")
	}

	return cfg, nil
}

func positiveDuration(v *viper.Viper, key string) (time.Duration, error) {
	d, err := time.ParseDuration(v.GetString(key))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, v.GetString(key))
	}
	return d, nil
}

func parseList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
