package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

func TestStakeDistributionPercentagesSumTo100(t *testing.T) {
	validators := []models.Validator{
		{Address: "v1", Active: true, Weight: 500},
		{Address: "v2", Active: true, Weight: 300},
		{Address: "v3", Active: true, Weight: 200},
		{Address: "v4", Active: false, Weight: 9999}, // inactive, excluded
	}

	shares := StakeDistribution(validators)
	require.Len(t, shares, 3)

	var sum float64
	for _, s := range shares {
		sum += s.Percentage
	}
	assert.InEpsilon(t, 100, sum, 1e-9)

	// Sorted descending by percentage.
	assert.Equal(t, "v1", shares[0].Address)
	assert.InDelta(t, 50, shares[0].Percentage, 1e-9)
	assert.Equal(t, "v2", shares[1].Address)
	assert.Equal(t, "v3", shares[2].Address)
}

func TestStakeDistributionEmptyWhenNoActiveStake(t *testing.T) {
	assert.Empty(t, StakeDistribution(nil))
	assert.Empty(t, StakeDistribution([]models.Validator{
		{Address: "v1", Active: false, Weight: 100},
	}))
	// Active validators but zero total weight: no division by zero.
	assert.Empty(t, StakeDistribution([]models.Validator{
		{Address: "v1", Active: true, Weight: 0},
		{Address: "v2", Active: true, Weight: 0},
	}))
}

func TestStakeDistributionHueRotation(t *testing.T) {
	validators := []models.Validator{
		{Address: "v1", Active: true, Weight: 400},
		{Address: "v2", Active: true, Weight: 300},
		{Address: "v3", Active: true, Weight: 200},
		{Address: "v4", Active: true, Weight: 100},
	}

	shares := StakeDistribution(validators)
	require.Len(t, shares, 4)

	for i, s := range shares {
		expected := math.Mod(float64(i)*137.508, 360)
		assert.InDelta(t, expected, s.Hue, 1e-9)
	}

	// Same input, same colors: assignment is reproducible.
	again := StakeDistribution(validators)
	assert.Equal(t, shares, again)
}
