package muscle

import (
	"math"

	"codeberg.org/mutker/bodyctl/internal/errors"
)

const (
	// DefaultWeeks is the planning horizon used when none is configured.
	DefaultWeeks = 12

	kcalPerKgFat       = 7700
	maxHealthyWeeklyKg = 1.0
)

// Compute splits weightKg into fat and lean mass for the given body fat %.
func Compute(weightKg, fatPct float64) (Composition, error) {
	errFactory := errors.New()

	if !(weightKg > 0) || math.IsInf(weightKg, 1) {
		return Composition{}, errFactory.WithMessage(ErrInvalidInput, "weight must be a finite value greater than zero").
			WithData(weightKg)
	}
	if !(fatPct >= 0 && fatPct <= 100) {
		return Composition{}, errFactory.WithMessage(ErrInvalidInput, "body fat must be between 0 and 100").
			WithData(fatPct)
	}

	fatKg := fatPct / 100 * weightKg
	leanKg := weightKg - fatKg

	return Composition{
		WeightKg:  weightKg,
		FatKg:     fatKg,
		LeanKg:    leanKg,
		FatPct:    fatPct,
		MusclePct: leanKg / weightKg * 100,
	}, nil
}

// Predict returns the composition for a target weight and body fat without
// recording it.
func Predict(weightKg, fatPct float64) (Composition, error) {
	return Compute(weightKg, fatPct)
}

func classifyProgress(deltaKg float64) ProgressStatus {
	switch {
	case deltaKg > 1:
		return ProgressSignificantGain
	case deltaKg > 0.1:
		return ProgressModerateGain
	case deltaKg < -1:
		return ProgressSignificantLoss
	case deltaKg < -0.1:
		return ProgressModerateLoss
	default:
		return ProgressStable
	}
}

const (
	adviceNoData      = "not enough data for a training recommendation"
	adviceStrength    = "focus on strength and hypertrophy training"
	adviceMixed       = "mixed training: strength and definition"
	adviceMaintenance = "focus on maintenance and toning"
)

func trainingAdvice(musclePct float64) string {
	switch {
	case musclePct < 70:
		return adviceStrength
	case musclePct < 80:
		return adviceMixed
	default:
		return adviceMaintenance
	}
}
