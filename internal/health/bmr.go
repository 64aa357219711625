package health

import (
	"math"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
)

// Activity multipliers for TDEE, sedentary through extra active.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityVeryActive: 1.725,
	model.ActivityExtra:      1.9,
}

// BMRResult holds the basal metabolic rate and the total daily energy
// expenditure, both in whole calories per day.
type BMRResult struct {
	BMR  int
	TDEE int
}

// BMR computes the Harris-Benedict basal metabolic rate and scales it by
// the activity multiplier. Gender "other" uses the mean of the male and
// female estimates. An unknown activity level falls back to sedentary.
func BMR(gender model.Gender, weightKg, heightCm float64, age int, level model.ActivityLevel) (BMRResult, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMRResult{}, domain.Validation("weight and height must be positive")
	}
	if age <= 0 {
		return BMRResult{}, domain.Validation("age must be positive")
	}

	var bmr float64
	switch gender {
	case model.GenderMale:
		bmr = maleBMR(weightKg, heightCm, age)
	case model.GenderFemale:
		bmr = femaleBMR(weightKg, heightCm, age)
	case model.GenderOther:
		bmr = (maleBMR(weightKg, heightCm, age) + femaleBMR(weightKg, heightCm, age)) / 2
	default:
		return BMRResult{}, domain.Validation("unknown gender %q", gender)
	}

	mult, ok := activityMultipliers[level]
	if !ok {
		mult = activityMultipliers[model.ActivitySedentary]
	}

	return BMRResult{
		BMR:  int(math.Round(bmr)),
		TDEE: int(math.Round(bmr * mult)),
	}, nil
}

func maleBMR(w, h float64, age int) float64 {
	return 88.362 + 13.397*w + 4.799*h - 5.677*float64(age)
}

func femaleBMR(w, h float64, age int) float64 {
	return 447.593 + 9.247*w + 3.098*h - 4.330*float64(age)
}
