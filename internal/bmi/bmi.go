package bmi

import (
	"math"

	"codeberg.org/mutker/bodyctl/internal/errors"
)

const (
	idealMinBMI = 18.5
	idealMaxBMI = 24.9
)

// thresholds[i] is the lower bound of bands[i+1].
var (
	thresholds = []float64{16, 17, 18.5, 25, 30, 35, 40}
	bands      = []Band{
		SevereThinness,
		ModerateThinness,
		MildThinness,
		Normal,
		Overweight,
		ObesityClassI,
		ObesityClassII,
		ObesityClassIII,
	}
)

// Compute returns weight / height².
func Compute(weightKg, heightM float64) (float64, error) {
	errFactory := errors.New()

	if !positive(heightM) {
		return 0, errFactory.WithMessage(ErrInvalidInput, "height must be a finite value greater than zero").
			WithData(heightM)
	}
	if !positive(weightKg) {
		return 0, errFactory.WithMessage(ErrInvalidInput, "weight must be a finite value greater than zero").
			WithData(weightKg)
	}

	return weightKg / (heightM * heightM), nil
}

// Classify maps a BMI onto its band. Bands are half-open: a value equal to a
// threshold belongs to the band that starts there.
func Classify(bmi float64) Band {
	for i, t := range thresholds {
		if bmi < t {
			return bands[i]
		}
	}

	return bands[len(bands)-1]
}

// Bands returns every band in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)

	return out
}

// IdealWeightRange returns the weights that keep BMI within 18.5 and 24.9
// at the given height.
func IdealWeightRange(heightM float64) (WeightRange, error) {
	if !positive(heightM) {
		return WeightRange{}, errors.New().
			WithMessage(ErrInvalidInput, "height must be a finite value greater than zero").
			WithData(heightM)
	}

	sq := heightM * heightM

	return WeightRange{
		MinKg: idealMinBMI * sq,
		MaxKg: idealMaxBMI * sq,
	}, nil
}

// positive is false for NaN and +Inf as well as for v <= 0.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
