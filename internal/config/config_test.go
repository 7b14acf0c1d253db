package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testORSKey = "ors-test-key"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ORS_API_KEY", testORSKey)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, testORSKey, cfg.ORSAPIKey)
	assert.Equal(t, "https://api.openrouteservice.org", cfg.ORSBaseURL)
	assert.Equal(t, 20*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 20*time.Second, cfg.RoutingTimeout)
	assert.Equal(t, 5, cfg.SuggestionSize)
	assert.Empty(t, cfg.OCMAPIKey)
	assert.Equal(t, "https://api.openchargemap.io/v3/poi/", cfg.OCMBaseURL)
	assert.Equal(t, 30*time.Second, cfg.StationsTimeout)
	assert.Equal(t, 50, cfg.StationsMaxResults)
	assert.Equal(t, 10.0, cfg.DefaultRadiusKm)
	assert.Empty(t, cfg.CORSAllowedOrigins)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("ORS_API_KEY", testORSKey)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("GEOCODE_TIMEOUT", "5s")
	t.Setenv("ROUTING_TIMEOUT", "45s")
	t.Setenv("STATIONS_TIMEOUT", "1m")
	t.Setenv("STATIONS_MAX_RESULTS", "25")
	t.Setenv("SUGGESTION_SIZE", "8")
	t.Setenv("DEFAULT_RADIUS_KM", "2.5")
	t.Setenv("OCM_API_KEY", "ocm-key")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, https://ecovia.app ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.GeocodeTimeout)
	assert.Equal(t, 45*time.Second, cfg.RoutingTimeout)
	assert.Equal(t, time.Minute, cfg.StationsTimeout)
	assert.Equal(t, 25, cfg.StationsMaxResults)
	assert.Equal(t, 8, cfg.SuggestionSize)
	assert.Equal(t, 2.5, cfg.DefaultRadiusKm)
	assert.Equal(t, "ocm-key", cfg.OCMAPIKey)
	assert.Equal(t, []string{"http://localhost:5173", "https://ecovia.app"}, cfg.CORSAllowedOrigins)
}

func TestLoad_OpenChargeMapKeyFallback(t *testing.T) {
	t.Setenv("ORS_API_KEY", testORSKey)
	t.Setenv("OPENCHARGEMAP_API_KEY", "legacy-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy-key", cfg.OCMAPIKey)
}

func TestLoad_MissingORSKey(t *testing.T) {
	t.Setenv("ORS_API_KEY", "")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORS_API_KEY")
}

func TestLoad_InvalidTimeouts(t *testing.T) {
	for _, key := range []string{"SHUTDOWN_TIMEOUT", "GEOCODE_TIMEOUT", "ROUTING_TIMEOUT", "STATIONS_TIMEOUT"} {
		for _, val := range []string{"not-a-duration", "-1s", "0s"} {
			t.Run(key+"="+val, func(t *testing.T) {
				t.Setenv("ORS_API_KEY", testORSKey)
				t.Setenv(key, val)

				_, err := Load()
				require.Error(t, err)
				assert.Contains(t, err.Error(), key)
			})
		}
	}
}

func TestLoad_InvalidMaxResults(t *testing.T) {
	t.Setenv("ORS_API_KEY", testORSKey)
	t.Setenv("STATIONS_MAX_RESULTS", "0")
	_, err := Load()
	assert.Error(t, err)
}
