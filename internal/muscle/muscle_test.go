package muscle_test

import (
	"math"
	"testing"

	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/muscle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	c, err := muscle.Compute(70, 18.5)
	require.NoError(t, err)

	assert.Equal(t, 70.0, c.WeightKg)
	assert.Equal(t, 18.5, c.FatPct)
	assert.InDelta(t, 12.95, c.FatKg, 1e-9)
	assert.InDelta(t, 57.05, c.LeanKg, 1e-9)
	assert.InDelta(t, 81.5, c.MusclePct, 1e-9)
}

func TestComputeBounds(t *testing.T) {
	lean, err := muscle.Compute(60, 0)
	require.NoError(t, err)
	assert.Equal(t, 60.0, lean.LeanKg)
	assert.Equal(t, 100.0, lean.MusclePct)

	fat, err := muscle.Compute(60, 100)
	require.NoError(t, err)
	assert.Zero(t, fat.LeanKg)
}

func TestComputeInvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		fatPct   float64
	}{
		{"zero weight", 0, 20},
		{"negative weight", -70, 20},
		{"negative fat", 70, -0.1},
		{"fat above 100", 70, 100.1},
		{"NaN weight", math.NaN(), 20},
		{"infinite weight", math.Inf(1), 20},
		{"NaN fat", 70, math.NaN()},
		{"infinite fat", 70, math.Inf(1)},
		{"negative infinite fat", 70, math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := muscle.Compute(tt.weightKg, tt.fatPct)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, muscle.ErrInvalidInput))
		})
	}
}

func TestPredictMatchesCompute(t *testing.T) {
	want, err := muscle.Compute(80, 15)
	require.NoError(t, err)

	got, err := muscle.Predict(80, 15)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
