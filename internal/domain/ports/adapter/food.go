package adapter

import (
	"context"

	"ai-health-assistant/internal/domain/model"
)

// FoodSource looks up nutrition facts by food name. The default
// implementation is a static table; a real database can replace it without
// touching the calculator.
type FoodSource interface {
	// Lookup returns domain.ErrNotFound on a miss.
	Lookup(ctx context.Context, name string) (*model.FoodInfo, error)
}
