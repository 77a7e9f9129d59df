package l1beat

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// GetTeleporterMessages returns the daily cross-chain message counts used
// by the interchain flow diagram. Falls back to an empty edge list.
//
// This endpoint rejects unknown query parameters, so it is the one accessor
// without the cache-busting timestamp.
func (c *Client) GetTeleporterMessages(ctx context.Context) models.TeleporterData {
	data, err := cache.Fetch(ctx, c.cache, "teleporter-messages", c.dataTTL, func(ctx context.Context) (models.TeleporterData, error) {
		var envelope teleporterEnvelope
		if err := c.fetch.GetJSON(ctx, c.rawEndpoint("/api/teleporter/messages/daily-count"), &envelope); err != nil {
			return models.TeleporterData{}, err
		}
		if envelope.Messages == nil {
			return models.TeleporterData{}, fmt.Errorf("malformed teleporter envelope: missing messages field")
		}

		edges := make([]models.TeleporterEdge, 0, len(envelope.Messages))
		for _, m := range envelope.Messages {
			if m.SourceChain == "" || m.TargetChain == "" {
				c.logger.Warn("skipping teleporter edge with missing endpoint",
					zap.String("source", m.SourceChain),
					zap.String("target", m.TargetChain),
				)
				continue
			}
			count := int(m.Count)
			if count < 0 {
				count = 0
			}
			edges = append(edges, models.TeleporterEdge{
				Source: m.SourceChain,
				Target: m.TargetChain,
				Count:  count,
			})
		}

		return models.TeleporterData{
			Edges: edges,
			Meta: models.TeleporterMeta{
				TotalMessages: int(envelope.Metadata.TotalMessages),
				StartDate:     envelope.Metadata.StartDate,
				EndDate:       envelope.Metadata.EndDate,
				UpdatedAt:     envelope.Metadata.UpdatedAt,
			},
		}, nil
	})
	if err != nil {
		c.logger.Warn("teleporter fetch failed, falling back to empty dataset", zap.Error(err))
		return models.TeleporterData{Edges: []models.TeleporterEdge{}}
	}
	return data
}
