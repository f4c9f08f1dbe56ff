package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vignesh-ravichandran/Crimson/pkg/utils"
)

func TestUnitScore(t *testing.T) {
	expected := map[int]float64{1: -1.0, 2: 0.5, 3: 1.0, 4: 2.0, 5: 3.0}
	for level, want := range expected {
		got, ok := UnitScore(level)
		assert.True(t, ok, "level %d", level)
		assert.Equal(t, want, got, "level %d", level)
	}

	for _, level := range []int{0, -1, 6, 100} {
		_, ok := UnitScore(level)
		assert.False(t, ok, "level %d", level)
	}
}

func TestDetailScore(t *testing.T) {
	cases := []struct {
		effort, weight int
		want           float64
	}{
		{1, 5, -5.0},
		{1, 1, -1.0},
		{2, 4, 2.0},
		{2, 3, 1.5},
		{3, 3, 3.0},
		{4, 2, 4.0},
		{5, 2, 6.0},
		{5, 5, 15.0},
	}
	for _, c := range cases {
		got, err := DetailScore(c.effort, c.weight)
		assert.NoError(t, err)
		assert.Equal(t, c.want, got, "effort %d weight %d", c.effort, c.weight)
	}
}

func TestDetailScoreRejectsUnknownEffort(t *testing.T) {
	_, err := DetailScore(0, 3)
	assert.ErrorIs(t, err, utils.ErrInvalidEffort)

	_, err = DetailScore(6, 3)
	assert.ErrorIs(t, err, utils.ErrInvalidEffort)
}

func TestTotalScore(t *testing.T) {
	assert.Equal(t, 0.0, TotalScore(nil))
	assert.Equal(t, 0.0, TotalScore([]float64{}))
	assert.Equal(t, 21.0, TotalScore([]float64{15.0, 6.0}))
	assert.Equal(t, -8.0, TotalScore([]float64{-5.0, -3.0}))

	// Mixed days sum as-is, no clamping toward zero.
	assert.Equal(t, 10.0, TotalScore([]float64{15.0, -5.0}))
}
