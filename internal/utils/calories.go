package utils

import (
	"errors"
	"math"
)

// Activity multipliers applied on top of the base metabolic rate.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very-active": 1.9,
}

// weightLossDeficit is subtracted from the TDEE to frame the goal around
// gradual weight loss.
const weightLossDeficit = 500

// CalculateDailyCalorieGoal derives a daily kcal target from body metrics.
// The coefficient set is intentionally sex-agnostic; callers supply positive
// finite metrics. Expects weight in kilograms and height in centimeters.
func CalculateDailyCalorieGoal(weightKg, heightCm float64, ageYears int, activityLevel string) (int, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, errors.New("weight, height and age must be positive")
	}

	multiplier, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, errors.New("unknown activity level: " + activityLevel)
	}

	bmr := 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(ageYears)
	tdee := bmr * multiplier

	return int(math.Round(tdee - weightLossDeficit)), nil
}

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}

	h := heightCm / 100.0 // to meters
	return weightKg / (h * h), nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obesity"
	}
}
