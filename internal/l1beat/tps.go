package l1beat

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/stats"
)

// GetTPSHistory returns the throughput series for one chain, or the
// network-wide series when chainID is empty. Falls back to an empty series.
//
// The per-chain endpoint ignores the day window server-side; days still
// participates in the cache key so one window's data is never served for
// another's.
func (c *Client) GetTPSHistory(ctx context.Context, chainID string, days int) []models.TimeSeriesPoint {
	if days <= 0 {
		days = defaultHistoryDays
	}

	var key, endpoint string
	if chainID == "" {
		key = fmt.Sprintf("tps-history-network-%d", days)
		params := url.Values{}
		params.Set("days", strconv.Itoa(days))
		endpoint = c.endpoint("/api/tps/network/history", params)
	} else {
		key = fmt.Sprintf("tps-history-%s-%d", chainID, days)
		endpoint = c.endpoint("/api/chains/"+url.PathEscape(chainID)+"/tps/history", nil)
	}

	points, err := cache.Fetch(ctx, c.cache, key, c.dataTTL, func(ctx context.Context) ([]models.TimeSeriesPoint, error) {
		var envelope tpsHistoryEnvelope
		if err := c.fetch.GetJSON(ctx, endpoint, &envelope); err != nil {
			return nil, err
		}
		if !envelope.Success || envelope.Data == nil {
			return nil, fmt.Errorf("malformed TPS history envelope: success=%t", envelope.Success)
		}

		points := make([]models.TimeSeriesPoint, 0, len(envelope.Data))
		for _, p := range envelope.Data {
			if p.Timestamp <= 0 {
				continue
			}
			points = append(points, models.TimeSeriesPoint{
				Timestamp: int64(p.Timestamp),
				Value:     clampNonNegative(float64(p.Value)),
			})
		}
		return stats.SortChrono(points), nil
	})
	if err != nil {
		c.logger.Warn("TPS history fetch failed, falling back to empty series",
			zap.String("chain_id", chainID),
			zap.Int("days", days),
			zap.Error(err),
		)
		return []models.TimeSeriesPoint{}
	}
	return points
}

// GetNetworkTPS returns the latest aggregate throughput snapshot across all
// chains, with freshness metadata derived from its timestamp. Falls back to
// a zeroed aggregate.
func (c *Client) GetNetworkTPS(ctx context.Context) models.NetworkTPS {
	snapshot, err := cache.Fetch(ctx, c.cache, "tps-network-latest", c.dataTTL, func(ctx context.Context) (models.NetworkTPS, error) {
		var envelope networkTPSEnvelope
		if err := c.fetch.GetJSON(ctx, c.endpoint("/api/tps/network/latest", nil), &envelope); err != nil {
			return models.NetworkTPS{}, err
		}
		if !envelope.Success {
			return models.NetworkTPS{}, fmt.Errorf("malformed network TPS envelope: success=false")
		}

		snapshot := models.NetworkTPS{
			Total:      clampNonNegative(float64(envelope.Data.TotalTPS)),
			ChainCount: int(envelope.Data.ChainCount),
			Timestamp:  int64(envelope.Data.Timestamp),
		}
		snapshot.Age, snapshot.AgeUnit = freshness(snapshot.Timestamp, c.now())
		return snapshot, nil
	})
	if err != nil {
		c.logger.Warn("network TPS fetch failed, falling back to zeroed aggregate", zap.Error(err))
		return models.NetworkTPS{AgeUnit: "minutes"}
	}
	return snapshot
}

// freshness expresses the snapshot age in minutes, switching to hours past
// one hour.
func freshness(timestamp int64, now time.Time) (float64, string) {
	if timestamp <= 0 {
		return 0, "minutes"
	}
	age := now.Sub(time.Unix(timestamp, 0))
	if age < 0 {
		age = 0
	}
	if age < time.Hour {
		return age.Minutes(), "minutes"
	}
	return age.Hours(), "hours"
}
