package bodyfat

import (
	"math"
	"strings"
)

const (
	minAge = 1
	maxAge = 120

	// Ages from ageSplit on use the older tables.
	ageSplit = 30

	bmiFactor    = 1.20
	ageFactor    = 0.23
	maleOffset   = 16.2
	femaleOffset = 5.4

	obeseTargetFactor      = 0.85
	acceptableTargetFactor = 0.92
)

var bands = [5]Band{Essential, Athlete, Fitness, Acceptable, Obese}

// cutPoints[i] is the lower bound of bands[i+1].
var cutPoints = map[Sex][2][4]float64{
	Male: {
		{8, 19, 24, 26},
		{11, 21, 26, 28},
	},
	Female: {
		{14, 20, 24, 29},
		{16, 22, 26, 31},
	},
}

// ParseSex accepts "M" or "F" in either case.
func ParseSex(s string) (Sex, error) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	default:
		return "", invalidInput(ErrInvalidSex, `sex must be "M" or "F"`, s)
	}
}

// Compute estimates body fat % from BMI, age and sex.
func Compute(bmi float64, age int, sex string) (float64, error) {
	if math.IsNaN(bmi) || math.IsInf(bmi, 0) {
		return 0, invalidInput(ErrInvalidBMI, "bmi must be a finite value", bmi)
	}
	if age < minAge || age > maxAge {
		return 0, invalidInput(ErrInvalidAge, "age must be between 1 and 120", age)
	}

	s, err := ParseSex(sex)
	if err != nil {
		return 0, err
	}

	return compute(bmi, age, s), nil
}

func compute(bmi float64, age int, sex Sex) float64 {
	offset := femaleOffset
	if sex == Male {
		offset = maleOffset
	}

	return bmiFactor*bmi + ageFactor*float64(age) - offset
}

// Classify maps a body-fat % onto its band for the given sex and age.
// Anything other than Male uses the female tables.
func Classify(fatPct float64, sex Sex, age int) Band {
	table := cutPoints[Female]
	if sex == Male {
		table = cutPoints[Male]
	}

	row := table[0]
	if age >= ageSplit {
		row = table[1]
	}

	for i, cut := range row {
		if fatPct < cut {
			return bands[i]
		}
	}

	return bands[len(bands)-1]
}

// RecommendGoal suggests a target: 15% less when obese, 8% less when
// acceptable, the current value otherwise.
func RecommendGoal(currentPct float64, sex Sex, age int) Goal {
	band := Classify(currentPct, sex, age)

	target := currentPct
	switch band {
	case Obese:
		target = currentPct * obeseTargetFactor
	case Acceptable:
		target = currentPct * acceptableTargetFactor
	}

	return Goal{
		CurrentBand:     band,
		CurrentPct:      currentPct,
		TargetPct:       target,
		ReductionNeeded: currentPct - target,
	}
}
