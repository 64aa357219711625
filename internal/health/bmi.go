// Package health holds the closed-form calculators: BMI, Harris-Benedict
// BMR with TDEE scaling, and the nutrition tip rotation.
package health

import (
	"math"

	"ai-health-assistant/internal/domain"
)

// BMIResult is the body mass index rounded to one decimal and its
// conventional category.
type BMIResult struct {
	BMI      float64
	Category string
}

// BMI computes weight / height² from kilograms and centimeters.
func BMI(weightKg, heightCm float64) (BMIResult, error) {
	if weightKg <= 0 {
		return BMIResult{}, domain.Validation("weight must be positive")
	}
	if heightCm <= 0 {
		return BMIResult{}, domain.Validation("height must be positive")
	}
	m := heightCm / 100
	bmi := weightKg / (m * m)
	return BMIResult{
		BMI:      math.Round(bmi*10) / 10,
		Category: classify(bmi),
	}, nil
}

func classify(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal weight"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}
