package l1beat

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// GetHealth probes the backend health endpoint. Falls back to "unknown"
// stamped with the current time. Cached under the short health TTL so a
// flapping backend is noticed within seconds, not minutes.
func (c *Client) GetHealth(ctx context.Context) models.HealthStatus {
	health, err := cache.Fetch(ctx, c.cache, "health", c.healthTTL, func(ctx context.Context) (models.HealthStatus, error) {
		var envelope healthEnvelope
		if err := c.fetch.GetJSON(ctx, c.endpoint("/health", nil), &envelope); err != nil {
			return models.HealthStatus{}, err
		}
		if envelope.Status == "" {
			return models.HealthStatus{}, fmt.Errorf("malformed health envelope: missing status")
		}

		timestamp := c.now().UnixMilli()
		if envelope.CurrentTime != "" {
			if ts, err := time.Parse(time.RFC3339, envelope.CurrentTime); err == nil {
				timestamp = ts.UnixMilli()
			}
		}

		return models.HealthStatus{
			Status:    envelope.Status,
			Timestamp: timestamp,
		}, nil
	})
	if err != nil {
		c.logger.Warn("health probe failed, falling back to unknown", zap.Error(err))
		return models.HealthStatus{
			Status:    models.StatusUnknown,
			Timestamp: c.now().UnixMilli(),
		}
	}
	return health
}
