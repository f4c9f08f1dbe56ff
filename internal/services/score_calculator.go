package services

import (
	"fmt"

	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

// Unit score per effort level. Level 1 (skipped) deliberately scores
// negative so a skip penalizes the day's total.
var effortUnitScores = map[int]float64{
	1: -1.0, // skipped
	2: 0.5,  // minimal effort
	3: 1.0,  // partial effort
	4: 2.0,  // solid effort
	5: 3.0,  // crushed it
}

// UnitScore returns the base score for an effort level on the 1-5 scale.
func UnitScore(effortLevel int) (float64, bool) {
	s, ok := effortUnitScores[effortLevel]
	return s, ok
}

// DetailScore computes one dimension's score: weight times the effort
// unit score. Validation rejects bad effort levels before this runs; an
// unknown level here is a contract violation between the two layers.
func DetailScore(effortLevel, dimensionWeight int) (float64, error) {
	unit, ok := UnitScore(effortLevel)
	if !ok {
		return 0, fmt.Errorf("effort level %d: %w", effortLevel, utils.ErrInvalidEffort)
	}
	return float64(dimensionWeight) * unit, nil
}

// TotalScore is the plain sum of detail scores, no averaging or clamping.
func TotalScore(detailScores []float64) float64 {
	var total float64
	for _, s := range detailScores {
		total += s
	}
	return total
}
