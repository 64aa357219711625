// File: internal/usecase/summary_uc.go
package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/logging"
)

// Compile-time check
var _ SummaryUseCase = (*summaryUC)(nil)

// SummaryUseCase loads the daily dashboard snapshot.
type SummaryUseCase interface {
	Daily(ctx context.Context, userID string) (*model.DailySummary, error)
}

type summaryUC struct {
	backend adapter.Backend
	log     *zerolog.Logger
}

func NewSummaryUseCase(backend adapter.Backend, logger *zerolog.Logger) *summaryUC {
	return &summaryUC{backend: backend, log: logger}
}

func (s *summaryUC) Daily(ctx context.Context, userID string) (*model.DailySummary, error) {
	defer logging.TraceDuration(s.log, "SummaryUC.Daily")()

	sum, err := s.backend.Summary(ctx, userID)
	if err != nil {
		s.log.Warn().Err(err).Msg("summary fetch failed")
		return nil, err
	}
	return sum, nil
}
