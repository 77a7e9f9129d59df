package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.API.BaseURL = "https://api.example.com"
	cfg.API.Retries = 3
	cfg.API.BackoffFactor = 2
	cfg.Server.Port = 8080
	return cfg
}

func TestValidateAcceptsWellFormedConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingBaseURL(t *testing.T) {
	cfg := validConfig()
	cfg.API.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateRejectsMalformedBaseURL(t *testing.T) {
	// A broken base URL is fatal at startup; no fetch could ever succeed.
	for _, bad := range []string{"not a url", "ftp://example.com", "example.com", "http://"} {
		cfg := validConfig()
		cfg.API.BaseURL = bad
		assert.Error(t, cfg.Validate(), "base_url=%q", bad)
	}
}

func TestValidateRejectsBadRetrySettings(t *testing.T) {
	cfg := validConfig()
	cfg.API.Retries = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.API.BackoffFactor = 0.5
	assert.Error(t, cfg.Validate())
}

func TestSafeStringDoesNotLeakPassword(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Password = "super-secret"
	assert.NotContains(t, cfg.SafeString(), "super-secret")
}
