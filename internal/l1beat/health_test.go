package l1beat

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

func TestGetHealthParsesCurrentTime(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		writeJSON(t, w, `{"status": "healthy", "currentTime": "2024-03-01T12:00:00Z"}`)
	}))

	health := c.GetHealth(context.Background())
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, int64(1709294400000), health.Timestamp)
	assert.True(t, health.IsHealthy())
}

func TestGetHealthFallbackUnknown(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))

	health := c.GetHealth(context.Background())
	assert.Equal(t, models.StatusUnknown, health.Status)
	assert.False(t, health.IsHealthy())
	assert.NotZero(t, health.Timestamp)
}

func TestIsHealthyPredicate(t *testing.T) {
	// Staleness of the timestamp does not matter, only the status string,
	// matched case-insensitively.
	tests := []struct {
		status string
		want   bool
	}{
		{"ok", true},
		{"OK", true},
		{"healthy", true},
		{"Healthy", true},
		{" healthy ", true},
		{"degraded", false},
		{"unknown", false},
		{"", false},
	}

	for _, tt := range tests {
		h := models.HealthStatus{Status: tt.status, Timestamp: 0}
		assert.Equal(t, tt.want, h.IsHealthy(), "status=%q", tt.status)
	}
}
