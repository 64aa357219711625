// File: internal/usecase/food_uc.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
)

// Compile-time check
var _ FoodUseCase = (*foodUC)(nil)

// FoodUseCase looks up nutrition facts through the injected source. A miss
// is not an error: it yields a zero-valued record named after the query, so
// the caller can render "not found" uniformly.
type FoodUseCase interface {
	Search(ctx context.Context, query string) (*model.FoodInfo, error)
}

type foodUC struct {
	source adapter.FoodSource
}

func NewFoodUseCase(source adapter.FoodSource) *foodUC {
	return &foodUC{source: source}
}

func (f *foodUC) Search(ctx context.Context, query string) (*model.FoodInfo, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrInvalidArgument
	}
	info, err := f.source.Lookup(ctx, strings.ToLower(query))
	if errors.Is(err, domain.ErrNotFound) {
		return &model.FoodInfo{Name: query}, nil
	}
	if err != nil {
		return nil, err
	}
	return info, nil
}
