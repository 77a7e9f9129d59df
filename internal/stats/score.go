package stats

import (
	"math"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// ChainScore rates a chain 0-100 from its validator set. Only validators
// that are active with positive stake count.
//
// The fixed 85 at exactly 10 active validators breaks the step progression
// below it. That is the behavior the dashboard has always shipped with;
// keep it until product says otherwise.
func ChainScore(validators []models.Validator) int {
	var active int
	for _, v := range validators {
		if v.Active && v.Weight > 0 {
			active++
		}
	}

	if active == 0 {
		return 0
	}

	if active == 10 {
		return 85
	}

	if active > 10 {
		bonus := float64(active-10) / 90 * 15
		if bonus > 15 {
			bonus = 15
		}
		score := 85 + bonus
		if score > 100 {
			score = 100
		}
		return int(math.Round(score))
	}

	score := 20.0
	if active > 5 {
		score += 20
	}
	return int(math.Round(score))
}
