package model

import (
	"strconv"
	"strings"

	"ai-health-assistant/internal/domain"
)

type GoalType string

const (
	GoalWeightLoss      GoalType = "weight_loss"
	GoalMuscleGain      GoalType = "muscle_gain"
	GoalHealthyEating   GoalType = "healthy_eating"
	GoalOverallFitness  GoalType = "overall_fitness"
	GoalGeneralWellness GoalType = "general_wellness"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "lightly_active"
	ActivityModerate   ActivityLevel = "moderately_active"
	ActivityVeryActive ActivityLevel = "very_active"
	ActivityExtra      ActivityLevel = "extra_active"
)

var goalTypes = map[GoalType]bool{
	GoalWeightLoss: true, GoalMuscleGain: true, GoalHealthyEating: true,
	GoalOverallFitness: true, GoalGeneralWellness: true,
}

var genders = map[Gender]bool{GenderMale: true, GenderFemale: true, GenderOther: true}

var activityLevels = map[ActivityLevel]bool{
	ActivitySedentary: true, ActivityLight: true, ActivityModerate: true,
	ActivityVeryActive: true, ActivityExtra: true,
}

// Goal is the normalized payload for /goal/set. Field names match the wire
// contract.
type Goal struct {
	GoalType           GoalType      `json:"goal_type"`
	CurrentWeight      float64       `json:"current_weight"`
	TargetWeight       float64       `json:"target_weight"`
	Height             float64       `json:"height"`
	Age                int           `json:"age"`
	Gender             Gender        `json:"gender"`
	ActivityLevel      ActivityLevel `json:"activity_level"`
	Timeframe          string        `json:"timeframe"`
	DietaryPreferences string        `json:"dietary_preferences,omitempty"`
	Allergies          string        `json:"allergies,omitempty"`
}

// GoalForm carries the raw, string-typed form fields as the user entered
// them. Parse validates and normalizes without touching the network.
type GoalForm struct {
	GoalType           string
	CurrentWeight      string
	TargetWeight       string
	Height             string
	Age                string
	Gender             string
	ActivityLevel      string
	Timeframe          string
	DietaryPreferences string
	Allergies          string
}

func (f GoalForm) Parse() (*Goal, error) {
	required := []struct{ name, val string }{
		{"goal type", f.GoalType},
		{"current weight", f.CurrentWeight},
		{"target weight", f.TargetWeight},
		{"height", f.Height},
		{"age", f.Age},
		{"gender", f.Gender},
		{"activity level", f.ActivityLevel},
		{"timeframe", f.Timeframe},
	}
	for _, r := range required {
		if strings.TrimSpace(r.val) == "" {
			return nil, domain.Validation("%s is required", r.name)
		}
	}

	gt := GoalType(strings.TrimSpace(f.GoalType))
	if !goalTypes[gt] {
		return nil, domain.Validation("unknown goal type %q", f.GoalType)
	}
	gd := Gender(strings.TrimSpace(f.Gender))
	if !genders[gd] {
		return nil, domain.Validation("unknown gender %q", f.Gender)
	}
	al := ActivityLevel(strings.TrimSpace(f.ActivityLevel))
	if !activityLevels[al] {
		return nil, domain.Validation("unknown activity level %q", f.ActivityLevel)
	}

	cur, err := parsePositiveFloat("current weight", f.CurrentWeight)
	if err != nil {
		return nil, err
	}
	tgt, err := parsePositiveFloat("target weight", f.TargetWeight)
	if err != nil {
		return nil, err
	}
	h, err := parsePositiveFloat("height", f.Height)
	if err != nil {
		return nil, err
	}
	age, err := strconv.Atoi(strings.TrimSpace(f.Age))
	if err != nil || age <= 0 {
		return nil, domain.Validation("age must be a positive whole number")
	}

	return &Goal{
		GoalType:           gt,
		CurrentWeight:      cur,
		TargetWeight:       tgt,
		Height:             h,
		Age:                age,
		Gender:             gd,
		ActivityLevel:      al,
		Timeframe:          strings.TrimSpace(f.Timeframe),
		DietaryPreferences: strings.TrimSpace(f.DietaryPreferences),
		Allergies:          strings.TrimSpace(f.Allergies),
	}, nil
}

func parsePositiveFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, domain.Validation("%s must be a number", name)
	}
	if v <= 0 {
		return 0, domain.Validation("%s must be positive", name)
	}
	return v, nil
}
