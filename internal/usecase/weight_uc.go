// File: internal/usecase/weight_uc.go
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/repository"
)

// Compile-time check
var _ WeightUseCase = (*weightUC)(nil)

// WeightUseCase is the local weight journal: log a measurement, list the
// history newest first, and report the change since the previous entry.
type WeightUseCase interface {
	Log(ctx context.Context, weightKg float64) (*model.WeightEntry, error)
	History(ctx context.Context, limit int) ([]*model.WeightEntry, error)
	Change(ctx context.Context) (delta float64, ok bool, err error)
}

type weightUC struct {
	journal repository.WeightRepository
	now     func() time.Time
	log     *zerolog.Logger
}

func NewWeightUseCase(journal repository.WeightRepository, logger *zerolog.Logger) *weightUC {
	return &weightUC{journal: journal, now: time.Now, log: logger}
}

func (w *weightUC) Log(ctx context.Context, weightKg float64) (*model.WeightEntry, error) {
	if weightKg <= 0 {
		return nil, domain.Validation("weight must be positive")
	}
	entry := &model.WeightEntry{
		ID:       uuid.NewString(),
		Weight:   weightKg,
		LoggedAt: w.now(),
	}
	if err := w.journal.Add(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (w *weightUC) History(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	return w.journal.List(ctx, limit)
}

// Change returns newest minus previous; ok is false with fewer than two
// entries.
func (w *weightUC) Change(ctx context.Context) (float64, bool, error) {
	entries, err := w.journal.List(ctx, 2)
	if err != nil {
		return 0, false, err
	}
	if len(entries) < 2 {
		return 0, false, nil
	}
	return entries[0].Weight - entries[1].Weight, true, nil
}
