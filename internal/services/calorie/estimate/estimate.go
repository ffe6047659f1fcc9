// Package estimate computes daily calorie needs with the Mifflin-St Jeor
// equation.
package estimate

import (
	"strings"

	apperrors "github.com/louisbranch/calorie.space/internal/platform/errors"
)

// Gender selects the sex-specific BMR constant.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Activity level keys.
const (
	ActivitySedentary   = "SEDENTARY"
	ActivityLight       = "LIGHT"
	ActivityModerate    = "MODERATE"
	ActivityVeryActive  = "VERY_ACTIVE"
	ActivityExtraActive = "EXTRA_ACTIVE"
)

// TargetOffset is the daily kcal delta applied for loss and gain targets.
const TargetOffset = 500.0

var activityMultipliers = map[string]float64{
	ActivitySedentary:   1.2,
	ActivityLight:       1.375,
	ActivityModerate:    1.55,
	ActivityVeryActive:  1.725,
	ActivityExtraActive: 1.9,
}

// Profile is the input to Compute. Weight is in kilograms, height in
// centimeters.
type Profile struct {
	Age           int
	Gender        string
	Weight        float64
	Height        float64
	ActivityLevel string
}

// Result holds the derived daily targets in kcal.
type Result struct {
	BMR        float64
	TDEE       float64
	LossTarget float64
	GainTarget float64
}

// Multiplier returns the TDEE multiplier for an activity level, matched
// case-insensitively.
func Multiplier(level string) (float64, bool) {
	m, ok := activityMultipliers[strings.ToUpper(strings.TrimSpace(level))]
	return m, ok
}

// Compute validates p and returns its daily calorie estimate. Validation
// stops at the first failure, checked in the order age, weight, height,
// gender, activity level.
func Compute(p Profile) (Result, error) {
	if p.Age <= 0 {
		return Result{}, apperrors.InvalidField(apperrors.CodeProfileInvalidAge, "age", "Age must be greater than 0")
	}
	if !(p.Weight > 0) {
		return Result{}, apperrors.InvalidField(apperrors.CodeProfileInvalidWeight, "weight", "Weight must be greater than 0")
	}
	if !(p.Height > 0) {
		return Result{}, apperrors.InvalidField(apperrors.CodeProfileInvalidHeight, "height", "Height must be greater than 0")
	}
	gender, ok := parseGender(p.Gender)
	if !ok {
		return Result{}, apperrors.InvalidField(apperrors.CodeProfileInvalidGender, "gender", "Gender must be 'MALE' or 'FEMALE'")
	}
	multiplier, ok := Multiplier(p.ActivityLevel)
	if !ok {
		return Result{}, apperrors.InvalidField(apperrors.CodeProfileInvalidActivityLevel, "activity_level",
			"Invalid activity level. Must be one of: SEDENTARY, LIGHT, MODERATE, VERY_ACTIVE, EXTRA_ACTIVE")
	}

	bmr := BMR(gender, p.Age, p.Weight, p.Height)
	tdee := bmr * multiplier
	return Result{
		BMR:        bmr,
		TDEE:       tdee,
		LossTarget: tdee - TargetOffset,
		GainTarget: tdee + TargetOffset,
	}, nil
}

// BMR returns the basal metabolic rate for already validated inputs.
func BMR(gender Gender, age int, weight, height float64) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

func parseGender(raw string) (Gender, bool) {
	switch Gender(strings.ToUpper(strings.TrimSpace(raw))) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	default:
		return "", false
	}
}
