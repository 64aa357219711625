package repository

import (
	"context"

	"ai-health-assistant/internal/domain/model"
)

// WeightRepository is the local weight journal.
type WeightRepository interface {
	Add(ctx context.Context, entry *model.WeightEntry) error
	// List returns entries newest first, at most limit (0 = no limit).
	List(ctx context.Context, limit int) ([]*model.WeightEntry, error)
	Close() error
}
