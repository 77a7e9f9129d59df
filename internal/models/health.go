package models

import "strings"

// HealthStatus is the backend health probe result. StatusUnknown is the
// fallback when the probe itself fails.
type HealthStatus struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"` // unix millis
}

const StatusUnknown = "unknown"

// IsHealthy matches the status case-insensitively against the values the
// backend reports when it is up.
func (h HealthStatus) IsHealthy() bool {
	switch strings.ToLower(strings.TrimSpace(h.Status)) {
	case "ok", "healthy":
		return true
	default:
		return false
	}
}
