package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

func activeValidators(n int) []models.Validator {
	vs := make([]models.Validator, n)
	for i := range vs {
		vs[i] = models.Validator{Active: true, Weight: 100}
	}
	return vs
}

func TestChainScoreStepFunctionBelowTen(t *testing.T) {
	// The step values below 10 and the fixed 85 at exactly 10 are shipped
	// behavior, discontinuity included.
	expected := []int{0, 20, 20, 20, 20, 20, 40, 40, 40, 40, 85}
	for count, want := range expected {
		assert.Equal(t, want, ChainScore(activeValidators(count)), "count=%d", count)
	}
}

func TestChainScoreAboveTen(t *testing.T) {
	// score = 85 + min((n-10)/90*15, 15)
	assert.Equal(t, 87, ChainScore(activeValidators(19)))  // 85 + 1.5 → 87 (rounded)
	assert.Equal(t, 93, ChainScore(activeValidators(55)))  // 85 + 7.5 → 93 (rounded)
	assert.Equal(t, 100, ChainScore(activeValidators(100)))
	assert.Equal(t, 100, ChainScore(activeValidators(500))) // capped
}

func TestChainScoreIgnoresInactiveAndZeroStake(t *testing.T) {
	vs := []models.Validator{
		{Active: true, Weight: 0},    // zero stake, excluded
		{Active: false, Weight: 100}, // inactive, excluded
		{Active: true, Weight: -5},   // non-positive, excluded
	}
	assert.Equal(t, 0, ChainScore(vs))

	vs = append(vs, models.Validator{Active: true, Weight: 1})
	assert.Equal(t, 20, ChainScore(vs))
}
