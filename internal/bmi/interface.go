package bmi

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Band is a BMI classification label.
type Band string

const (
	SevereThinness   Band = "Bajo peso (delgadez severa)"
	ModerateThinness Band = "Bajo peso (delgadez moderada)"
	MildThinness     Band = "Bajo peso (delgadez leve)"
	Normal           Band = "Peso normal"
	Overweight       Band = "Sobrepeso"
	ObesityClassI    Band = "Obesidad grado I"
	ObesityClassII   Band = "Obesidad grado II"
	ObesityClassIII  Band = "Obesidad grado III"
)

func (b Band) String() string {
	return string(b)
}

// Record is one stored BMI calculation.
type Record struct {
	ID             uuid.UUID `yaml:"id"`
	WeightKg       float64   `yaml:"weight_kg"`
	HeightM        float64   `yaml:"height_m"`
	BMI            float64   `yaml:"bmi"`
	Classification Band      `yaml:"classification"`
	Timestamp      time.Time `yaml:"timestamp"`
}

// Summary is the simplified export shape of a Record.
type Summary struct {
	BMI            float64   `yaml:"bmi"`
	Classification Band      `yaml:"classification"`
	Timestamp      time.Time `yaml:"timestamp"`
}

// Format selects the shape of an Export.
type Format string

const (
	FormatList       Format = "list"
	FormatSimplified Format = "simplified"
)

// Export holds the history in the requested format. Only the slice matching
// Format is populated.
type Export struct {
	Format    Format    `yaml:"format"`
	Records   []Record  `yaml:"records,omitempty"`
	Summaries []Summary `yaml:"summaries,omitempty"`
}

// Statistics describes the recorded BMI values. Count is 0 for an empty
// history, in which case every other field is zero.
type Statistics struct {
	Count          int     `yaml:"count"`
	Mean           float64 `yaml:"mean"`
	Median         float64 `yaml:"median"`
	Min            float64 `yaml:"min"`
	Max            float64 `yaml:"max"`
	StdDev         float64 `yaml:"std_dev"`
	MostCommonBand Band    `yaml:"most_common_band"`
}

// WeightRange is the healthy weight span for a height.
type WeightRange struct {
	MinKg float64 `yaml:"min_kg"`
	MaxKg float64 `yaml:"max_kg"`
}

func (r WeightRange) String() string {
	return fmt.Sprintf("%.1f - %.1f kg", r.MinKg, r.MaxKg)
}

type pending struct {
	weightKg float64
	heightM  float64
}
