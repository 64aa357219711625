// File: internal/usecase/entry_uc.go
package usecase

import (
	"context"
	"math"
	"strconv"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/logging"
)

// Compile-time check
var _ EntryUseCase = (*entryUC)(nil)

// EntryUseCase records free-form health entries. Submission is gated on
// authentication; steps/sleep/water entries become /log writes, food
// entries become /log/food writes, and exercise and weight stay local
// (weight is journaled by WeightUseCase).
type EntryUseCase interface {
	Add(ctx context.Context, e model.Entry) error
}

type entryUC struct {
	session SessionUseCase
	gate    FeatureGate
	backend adapter.Backend
	weights WeightUseCase
	log     *zerolog.Logger
}

func NewEntryUseCase(session SessionUseCase, gate FeatureGate, backend adapter.Backend, weights WeightUseCase, logger *zerolog.Logger) *entryUC {
	return &entryUC{session: session, gate: gate, backend: backend, weights: weights, log: logger}
}

func (u *entryUC) Add(ctx context.Context, e model.Entry) error {
	defer logging.TraceDuration(u.log, "EntryUC.Add")()

	if err := e.Validate(); err != nil {
		return err
	}
	sess := u.session.Current()
	if err := u.gate.Require(sess); err != nil {
		return err
	}
	userID := userIDOf(sess)

	switch e.Type {
	case model.EntrySteps:
		return u.backend.LogMetrics(ctx, sess.Token, userID, adapter.MetricsLog{Steps: int(math.Round(e.Value))})
	case model.EntrySleep:
		return u.backend.LogMetrics(ctx, sess.Token, userID, adapter.MetricsLog{SleepHours: hours(e)})
	case model.EntryWater:
		return u.backend.LogMetrics(ctx, sess.Token, userID, adapter.MetricsLog{WaterIntake: e.Value})
	case model.EntryFood:
		item := e.Name
		if item == "" {
			item = e.Notes
		}
		return u.backend.LogFood(ctx, sess.Token, userID, item, 0)
	case model.EntryWeight:
		kg := e.Value
		if e.Unit == "lbs" {
			kg = e.Value * 0.45359237
		}
		_, err := u.weights.Log(ctx, kg)
		return err
	case model.EntryExercise:
		// No backend field for exercise; acknowledged locally.
		u.log.Info().Float64("value", e.Value).Str("unit", e.Unit).Str("notes", e.Notes).Msg("exercise entry recorded")
		return nil
	}
	return nil
}

func hours(e model.Entry) float64 {
	if e.Unit == "minutes" {
		return e.Value / 60
	}
	return e.Value
}

func userIDOf(sess model.Session) string {
	if sess.User == nil {
		return ""
	}
	return strconv.FormatInt(sess.User.ID, 10)
}
