package model

import (
	"strings"
	"time"

	"ai-health-assistant/internal/domain"
)

// WeightEntry is one row of the local weight journal, newest first.
type WeightEntry struct {
	ID       string
	Weight   float64 // kilograms
	LoggedAt time.Time
}

type EntryType string

const (
	EntryExercise EntryType = "exercise"
	EntryFood     EntryType = "food"
	EntryWater    EntryType = "water"
	EntrySleep    EntryType = "sleep"
	EntrySteps    EntryType = "steps"
	EntryWeight   EntryType = "weight"
)

var entryUnits = map[EntryType][]string{
	EntryExercise: {"minutes", "hours"},
	EntryFood:     {"servings", "grams", "cups"},
	EntryWater:    {"glasses", "liters", "ml"},
	EntrySleep:    {"hours", "minutes"},
	EntrySteps:    {"steps"},
	EntryWeight:   {"kg", "lbs"},
}

// Units lists the allowed units for an entry type, nil for unknown types.
func (t EntryType) Units() []string { return entryUnits[t] }

// Entry is one free-form log entry (exercise, meal, water, sleep, steps or
// weight).
type Entry struct {
	Type  EntryType
	Value float64
	Unit  string
	Name  string // food item name, unused for other types
	Notes string
}

func (e Entry) Validate() error {
	units := e.Type.Units()
	if units == nil {
		return domain.Validation("unknown entry type %q", e.Type)
	}
	if e.Value <= 0 {
		return domain.Validation("value must be positive")
	}
	unit := strings.TrimSpace(e.Unit)
	for _, u := range units {
		if u == unit {
			return nil
		}
	}
	return domain.Validation("unit %q is not valid for %s entries", e.Unit, e.Type)
}

// FoodInfo is one record of the food database.
type FoodInfo struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}
