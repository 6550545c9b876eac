package muscle

import (
	"time"

	"github.com/google/uuid"
)

// Composition splits body weight into fat and lean mass.
type Composition struct {
	WeightKg  float64 `yaml:"weight_kg"`
	FatKg     float64 `yaml:"fat_kg"`
	LeanKg    float64 `yaml:"lean_kg"`
	FatPct    float64 `yaml:"fat_pct"`
	MusclePct float64 `yaml:"muscle_pct"`
}

// Record is one stored composition.
type Record struct {
	Composition `yaml:",inline"`

	ID        uuid.UUID `yaml:"id"`
	Timestamp time.Time `yaml:"timestamp"`
}

// ProgressStatus classifies the change in lean mass.
type ProgressStatus string

const (
	ProgressInsufficientData ProgressStatus = "insufficient_data"
	ProgressSignificantGain  ProgressStatus = "significant_gain"
	ProgressModerateGain     ProgressStatus = "moderate_gain"
	ProgressStable           ProgressStatus = "stable"
	ProgressModerateLoss     ProgressStatus = "moderate_loss"
	ProgressSignificantLoss  ProgressStatus = "significant_loss"
)

// Progress compares lean mass between the oldest and newest record. With
// fewer than two records every numeric field is zero.
type Progress struct {
	Status        ProgressStatus `yaml:"status"`
	DeltaKg       float64        `yaml:"delta_kg"`
	PercentChange float64        `yaml:"percent_change"`
	InitialLeanKg float64        `yaml:"initial_lean_kg"`
	CurrentLeanKg float64        `yaml:"current_lean_kg"`
	ElapsedDays   int            `yaml:"elapsed_days"`
}

// DeficitPlan is the energy deficit needed to reach a target composition.
type DeficitPlan struct {
	FatToLoseKg      float64 `yaml:"fat_to_lose_kg"`
	DailyDeficitKcal float64 `yaml:"daily_deficit_kcal"`
	Weeks            int     `yaml:"weeks"`
	WeeklyLossKg     float64 `yaml:"weekly_loss_kg"`
	Healthy          bool    `yaml:"healthy"`
}

type pending struct {
	weightKg float64
	fatPct   float64
}
