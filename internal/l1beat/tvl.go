package l1beat

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/stats"
)

const defaultHistoryDays = 30

// GetTVLHistory returns the network TVL series for the given day window,
// deduplicated to one sample per calendar day and sorted ascending. Falls
// back to an empty series.
func (c *Client) GetTVLHistory(ctx context.Context, days int) []models.TimeSeriesPoint {
	if days <= 0 {
		days = defaultHistoryDays
	}

	key := fmt.Sprintf("tvl-history-%d", days)
	points, err := cache.Fetch(ctx, c.cache, key, c.dataTTL, func(ctx context.Context) ([]models.TimeSeriesPoint, error) {
		params := url.Values{}
		params.Set("days", strconv.Itoa(days))

		var envelope tvlHistoryEnvelope
		if err := c.fetch.GetJSON(ctx, c.endpoint("/api/tvl/history", params), &envelope); err != nil {
			return nil, err
		}
		if envelope.Data == nil {
			return nil, fmt.Errorf("malformed TVL history envelope: missing data field")
		}

		points := make([]models.TimeSeriesPoint, 0, len(envelope.Data))
		for _, p := range envelope.Data {
			if p.Date <= 0 {
				continue
			}
			points = append(points, models.TimeSeriesPoint{
				Timestamp: int64(p.Date),
				Value:     clampNonNegative(float64(p.TVL)),
			})
		}
		return stats.DedupDaily(points), nil
	})
	if err != nil {
		c.logger.Warn("TVL history fetch failed, falling back to empty series",
			zap.Int("days", days),
			zap.Error(err),
		)
		return []models.TimeSeriesPoint{}
	}
	return points
}

// GetTVLHealth reports the freshness of the backend's TVL aggregation.
// Falls back to a zeroed record flagged stale.
func (c *Client) GetTVLHealth(ctx context.Context) models.TVLHealth {
	health, err := cache.Fetch(ctx, c.cache, "tvl-health", c.dataTTL, func(ctx context.Context) (models.TVLHealth, error) {
		var envelope tvlHealthEnvelope
		if err := c.fetch.GetJSON(ctx, c.endpoint("/api/tvl/health", nil), &envelope); err != nil {
			return models.TVLHealth{}, err
		}
		if envelope.Status == "" {
			return models.TVLHealth{}, fmt.Errorf("malformed TVL health envelope: missing status")
		}

		return models.TVLHealth{
			LastUpdate: int64(envelope.LastUpdate),
			AgeHours:   clampNonNegative(float64(envelope.AgeInHours)),
			TVL:        clampNonNegative(float64(envelope.TVL)),
			Status:     envelope.Status,
		}, nil
	})
	if err != nil {
		c.logger.Warn("TVL health fetch failed, falling back to stale record", zap.Error(err))
		return models.TVLHealth{Status: "stale"}
	}
	return health
}
