package l1beat

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// activeStatus is the one backend status literal that counts as active.
// Unknown or missing statuses are inactive.
const activeStatus = "active"

// GetChains returns all tracked chains with their validator sets, or an
// empty list when the backend is unreachable or returns garbage.
func (c *Client) GetChains(ctx context.Context) []models.Chain {
	chains, err := cache.Fetch(ctx, c.cache, "chains", c.dataTTL, func(ctx context.Context) ([]models.Chain, error) {
		var raw []rawChain
		if err := c.fetch.GetJSON(ctx, c.endpoint("/api/chains", nil), &raw); err != nil {
			return nil, err
		}

		out := make([]models.Chain, 0, len(raw))
		for _, rc := range raw {
			if rc.ChainID == "" {
				c.logger.Warn("skipping chain without chainId", zap.String("name", rc.ChainName))
				continue
			}
			out = append(out, normalizeChain(rc))
		}
		return out, nil
	})
	if err != nil {
		c.logger.Warn("chains fetch failed, falling back to empty list", zap.Error(err))
		return []models.Chain{}
	}
	return chains
}

func normalizeChain(rc rawChain) models.Chain {
	chain := models.Chain{
		ID:              rc.ChainID,
		Name:            rc.ChainName,
		LogoURI:         rc.ChainLogoURI,
		Description:     rc.Description,
		ExplorerURL:     rc.ExplorerURL,
		SubnetID:        rc.SubnetID,
		PlatformChainID: rc.PlatformChainID,
		Validators:      make([]models.Validator, 0, len(rc.Validators)),
	}

	for _, rv := range rc.Validators {
		chain.Validators = append(chain.Validators, normalizeValidator(rv, rc.ExplorerURL))
	}

	if rc.NetworkToken != nil {
		chain.NetworkToken = &models.NetworkToken{
			Name:    rc.NetworkToken.Name,
			Symbol:  rc.NetworkToken.Symbol,
			LogoURI: rc.NetworkToken.LogoURI,
		}
	}

	if rc.TPS != nil {
		chain.TPS = &models.TPSSample{
			Value:     clampNonNegative(float64(rc.TPS.Value)),
			Timestamp: int64(rc.TPS.Timestamp),
		}
	}

	return chain
}

func normalizeValidator(rv rawValidator, explorerURL string) models.Validator {
	v := models.Validator{
		Address: rv.NodeID,
		Active:  rv.ValidationStatus == activeStatus,
		Uptime:  clampUptime(float64(rv.UptimePerformance)),
		Weight:  clampNonNegative(float64(rv.AmountStaked)),
	}
	if explorerURL != "" && rv.NodeID != "" {
		v.ExplorerURL = fmt.Sprintf("%s/validators/%s", strings.TrimSuffix(explorerURL, "/"), rv.NodeID)
	}
	return v
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func clampUptime(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
