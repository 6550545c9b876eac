package bodyfat

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sex selects the formula offset and the classification table.
type Sex string

const (
	Male   Sex = "M"
	Female Sex = "F"
)

// Band is a body-fat classification label.
type Band string

const (
	Essential  Band = "Grasa esencial"
	Athlete    Band = "Atleta"
	Fitness    Band = "Fitness"
	Acceptable Band = "Aceptable"
	Obese      Band = "Obeso"
)

func (b Band) String() string {
	return string(b)
}

// Record is one stored body-fat calculation.
type Record struct {
	ID             uuid.UUID `yaml:"id"`
	BMI            float64   `yaml:"bmi"`
	Age            int       `yaml:"age"`
	Sex            Sex       `yaml:"sex"`
	FatPct         float64   `yaml:"fat_pct"`
	Classification Band      `yaml:"classification"`
	Timestamp      time.Time `yaml:"timestamp"`
}

// TrendStatus is the direction of body fat between the oldest and newest
// record.
type TrendStatus string

const (
	TrendInsufficientData TrendStatus = "insufficient_data"
	TrendImproving        TrendStatus = "improving"
	TrendWorsening        TrendStatus = "worsening"
	TrendStable           TrendStatus = "stable"
)

// Trend compares the oldest and newest records. With fewer than two records
// the numeric fields are zero and Message says why.
type Trend struct {
	Status     TrendStatus `yaml:"status"`
	Message    string      `yaml:"message,omitempty"`
	Difference float64     `yaml:"difference"`
	First      float64     `yaml:"first"`
	Last       float64     `yaml:"last"`
	Count      int         `yaml:"count"`
}

// Goal is a recommended body-fat target.
type Goal struct {
	CurrentBand     Band    `yaml:"current_band"`
	CurrentPct      float64 `yaml:"current_pct"`
	TargetPct       float64 `yaml:"target_pct"`
	ReductionNeeded float64 `yaml:"reduction_needed"`
}

func (g Goal) String() string {
	return fmt.Sprintf("recommended target: %.1f%%", g.TargetPct)
}

type pending struct {
	bmi float64
	age int
	sex string
}
