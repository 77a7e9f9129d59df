package stats

import (
	"math"
	"sort"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/models"
)

// goldenAngle spaces adjacent ranks far apart on the hue wheel so the stake
// chart stays readable, and keeps color assignment reproducible for a given
// sorted order.
const goldenAngle = 137.508

// StakeShare is one active validator's slice of the total active stake.
type StakeShare struct {
	Address    string  `json:"address"`
	Weight     float64 `json:"weight"`
	Percentage float64 `json:"percentage"`
	Hue        float64 `json:"hue"`
}

// StakeDistribution computes each active validator's percentage of the
// total active stake, sorted descending. When there is no active stake the
// distribution is empty rather than divided by zero.
func StakeDistribution(validators []models.Validator) []StakeShare {
	var total float64
	active := make([]models.Validator, 0, len(validators))
	for _, v := range validators {
		if !v.Active {
			continue
		}
		active = append(active, v)
		total += v.Weight
	}

	if len(active) == 0 || total <= 0 {
		return []StakeShare{}
	}

	shares := make([]StakeShare, 0, len(active))
	for _, v := range active {
		shares = append(shares, StakeShare{
			Address:    v.Address,
			Weight:     v.Weight,
			Percentage: 100 * v.Weight / total,
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	for i := range shares {
		shares[i].Hue = math.Mod(float64(i)*goldenAngle, 360)
	}

	return shares
}
