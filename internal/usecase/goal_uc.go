// File: internal/usecase/goal_uc.go
package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/i18n"
	"ai-health-assistant/internal/infra/logging"
)

// Compile-time check
var _ GoalUseCase = (*goalUC)(nil)

type GoalState string

const (
	GoalIdle     GoalState = "idle"
	GoalFetching GoalState = "fetching"
	GoalHasGoal  GoalState = "has_goal"
	GoalNoGoal   GoalState = "no_goal"
)

// chatLog is the slice of the chat controller the goal lifecycle needs:
// informational appends and the logout reset.
type chatLog interface {
	AppendNotice(text string)
	Reset()
}

// GoalUseCase keeps "has the user set a goal" in sync with the backend
// across session changes and mediates goal submission.
type GoalUseCase interface {
	HandleSessionChange(ctx context.Context, sess model.Session)
	SubmitGoal(ctx context.Context, form model.GoalForm) error
	HasGoal() bool
	State() GoalState
	OpenEditor()
	EditorOpen() bool
}

type goalUC struct {
	session SessionUseCase
	gate    FeatureGate
	backend adapter.Backend
	chat    chatLog
	cat     *i18n.Catalog
	log     *zerolog.Logger

	mu         sync.Mutex
	state      GoalState
	hasGoal    bool
	editorOpen bool
}

func NewGoalUseCase(session SessionUseCase, gate FeatureGate, backend adapter.Backend, chat chatLog, cat *i18n.Catalog, logger *zerolog.Logger) *goalUC {
	return &goalUC{
		session: session,
		gate:    gate,
		backend: backend,
		chat:    chat,
		cat:     cat,
		log:     logger,
		state:   GoalIdle,
	}
}

// HandleSessionChange restarts the fetch cycle on login and performs the
// privacy reset on logout: no messages or goal state survive it. The goal
// fetch is a soft dependency — any failure other than "not found" degrades
// silently so chat and dashboard never block on it.
func (g *goalUC) HandleSessionChange(ctx context.Context, sess model.Session) {
	defer logging.TraceDuration(g.log, "GoalUC.HandleSessionChange")()

	if !sess.IsAuthenticated() {
		g.chat.Reset()
		g.setState(GoalIdle, false)
		return
	}

	g.setState(GoalFetching, false)

	goalText, err := g.backend.GetGoal(ctx, sess.Token)
	switch {
	case err == nil:
		g.setState(GoalHasGoal, true)
		g.chat.AppendNotice(g.cat.T("goal.current", goalText))
	case errors.Is(err, domain.ErrGoalNotSet):
		g.setState(GoalNoGoal, false)
		g.chat.AppendNotice(g.cat.T("goal.invite"))
	default:
		// Deliberate soft-fail: log it, no chat message.
		g.log.Warn().Err(err).Msg("goal fetch failed")
		g.setState(GoalNoGoal, false)
	}
}

// SubmitGoal validates locally, requires an authenticated session, then
// posts the normalized payload. No network call is made on validation or
// authentication failure. On a backend failure the server-provided detail
// is surfaced verbatim and the editing surface stays open.
func (g *goalUC) SubmitGoal(ctx context.Context, form model.GoalForm) error {
	defer logging.TraceDuration(g.log, "GoalUC.SubmitGoal")()

	goal, err := form.Parse()
	if err != nil {
		return err
	}

	sess := g.session.Current()
	if err := g.gate.Require(sess); err != nil {
		return err
	}

	if err := g.backend.SetGoal(ctx, sess.Token, goal); err != nil {
		g.log.Warn().Err(err).Msg("goal submission failed")
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Detail != "" {
			return apiErr
		}
		return errors.New(g.cat.T("goal.save_failed"))
	}

	g.mu.Lock()
	g.state = GoalHasGoal
	g.hasGoal = true
	g.editorOpen = false
	g.mu.Unlock()

	g.chat.AppendNotice(g.cat.T("goal.saved"))
	return nil
}

func (g *goalUC) HasGoal() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.hasGoal
}

func (g *goalUC) State() GoalState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *goalUC) OpenEditor() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.editorOpen = true
}

func (g *goalUC) EditorOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.editorOpen
}

func (g *goalUC) setState(st GoalState, hasGoal bool) {
	g.mu.Lock()
	g.state = st
	g.hasGoal = hasGoal
	g.mu.Unlock()
}
