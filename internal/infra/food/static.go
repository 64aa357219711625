// Package food serves nutrition facts from a built-in table.
package food

import (
	"context"
	"strings"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
)

// Compile-time check
var _ adapter.FoodSource = (*StaticSource)(nil)

// StaticSource is an in-process food database keyed by lower-cased name.
type StaticSource struct {
	items map[string]model.FoodInfo
}

func NewStaticSource() *StaticSource {
	return &StaticSource{items: map[string]model.FoodInfo{
		"apple": {
			Name: "Apple (medium)", Calories: 95,
			Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4,
		},
		"banana": {
			Name: "Banana (medium)", Calories: 105,
			Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3,
		},
		"chicken breast": {
			Name: "Chicken Breast (100g)", Calories: 165,
			Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0,
		},
		"rice": {
			Name: "White Rice (1 cup)", Calories: 205,
			Protein: 4.3, Carbs: 45, Fat: 0.4, Fiber: 0.6,
		},
		"broccoli": {
			Name: "Broccoli (1 cup)", Calories: 25,
			Protein: 3, Carbs: 5, Fat: 0.3, Fiber: 2,
		},
	}}
}

// Lookup returns the record for the query, matching case-insensitively.
// Unknown foods yield domain.ErrNotFound.
func (s *StaticSource) Lookup(ctx context.Context, query string) (*model.FoodInfo, error) {
	info, ok := s.items[strings.ToLower(strings.TrimSpace(query))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := info
	return &out, nil
}
