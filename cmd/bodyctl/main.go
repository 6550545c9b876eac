package main

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/mutker/bodyctl/internal/bmi"
	"codeberg.org/mutker/bodyctl/internal/bodyfat"
	"codeberg.org/mutker/bodyctl/internal/config"
	"codeberg.org/mutker/bodyctl/internal/errors"
	"codeberg.org/mutker/bodyctl/internal/logger"
	"codeberg.org/mutker/bodyctl/internal/muscle"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// report is written to stdout as YAML.
type report struct {
	BMI         bmi.Export          `yaml:"bmi"`
	IdealWeight string              `yaml:"ideal_weight"`
	BodyFat     *bodyfat.Record     `yaml:"body_fat,omitempty"`
	Goal        *bodyfat.Goal       `yaml:"goal,omitempty"`
	Composition *muscle.Record      `yaml:"composition,omitempty"`
	Training    string              `yaml:"training,omitempty"`
	Deficit     *muscle.DeficitPlan `yaml:"deficit,omitempty"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level: %v\n", err)
		os.Exit(1)
	}
	logger.Init(level, logger.IsService())
	logger.Debug().Msg("Config loaded")

	if err := run(cfg, os.Stdout); err != nil {
		var appErr errors.Error
		if errors.As(err, &appErr) {
			logger.FatalWithCode(appErr).Msg("bodyctl failed")
		}
		logger.Fatal().Err(err).Msg("bodyctl failed")
	}
}

// run feeds the configured measurements through BMI, body fat and muscle
// mass in turn and writes the resulting report to w.
func run(cfg *config.Config, w io.Writer) error {
	errFactory := errors.New()

	bmiTracker := bmi.NewTracker()
	bmiRecord, err := bmiTracker.Record(cfg.WeightKg, cfg.HeightM)
	if err != nil {
		return errFactory.Wrap(errors.ErrPipeline, err)
	}

	ideal, err := bmi.IdealWeightRange(cfg.HeightM)
	if err != nil {
		return errFactory.Wrap(errors.ErrPipeline, err)
	}

	logger.Info().
		Float64("bmi", bmiRecord.BMI).
		Str("band", bmiRecord.Classification.String()).
		Str("ideal_weight", ideal.String()).
		Msg("BMI calculated")

	export, err := bmiTracker.Export(cfg.ExportFormat)
	if err != nil {
		return errFactory.Wrap(errors.ErrExport, err)
	}

	out := report{BMI: export, IdealWeight: ideal.String()}

	if cfg.Age == 0 || cfg.Sex == "" {
		logger.Warn().Msg("Age or sex not configured, skipping body composition")
		return encode(w, out)
	}

	fatTracker := bodyfat.NewTracker()
	fatRecord, err := fatTracker.Record(bmiRecord.BMI, cfg.Age, cfg.Sex)
	if err != nil {
		return errFactory.Wrap(errors.ErrPipeline, err)
	}
	goal := fatTracker.RecommendGoal(fatRecord.FatPct, fatRecord.Sex, fatRecord.Age)
	out.BodyFat, out.Goal = &fatRecord, &goal

	logger.Info().
		Float64("fat_pct", fatRecord.FatPct).
		Str("band", fatRecord.Classification.String()).
		Float64("target_pct", goal.TargetPct).
		Msg("Body fat calculated")

	muscleTracker := muscle.NewTracker()
	composition, err := muscleTracker.Record(cfg.WeightKg, fatRecord.FatPct)
	if err != nil {
		return errFactory.Wrap(errors.ErrPipeline, err)
	}
	out.Composition = &composition
	out.Training = muscleTracker.RecommendTraining()

	logger.Info().
		Float64("lean_kg", composition.LeanKg).
		Float64("fat_kg", composition.FatKg).
		Str("training", out.Training).
		Msg("Composition calculated")

	if cfg.HasTarget() {
		plan, err := muscleTracker.CaloricDeficit(cfg.TargetWeightKg, cfg.TargetFatPct, cfg.Weeks)
		if err != nil {
			return errFactory.Wrap(errors.ErrPipeline, err)
		}
		out.Deficit = &plan

		if !plan.Healthy {
			logger.Warn().
				Float64("weekly_loss_kg", plan.WeeklyLossKg).
				Msg("Target needs more than 1 kg of fat loss per week")
		}
	}

	return encode(w, out)
}

func encode(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(r); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	if err := enc.Close(); err != nil {
		return errors.New().Wrap(errors.ErrExport, err)
	}

	return nil
}
