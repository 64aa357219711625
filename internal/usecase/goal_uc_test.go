// File: internal/usecase/goal_uc_test.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
)

func validGoalForm() model.GoalForm {
	return model.GoalForm{
		GoalType:      "weight_loss",
		CurrentWeight: "82",
		TargetWeight:  "75",
		Height:        "178",
		Age:           "34",
		Gender:        "male",
		ActivityLevel: "moderately_active",
		Timeframe:     "3 months",
	}
}

type goalFixture struct {
	session SessionUseCase
	backend *fakeBackend
	chat    ChatUseCase
	goal    GoalUseCase
}

func newGoalFixture(t *testing.T, backend *fakeBackend) *goalFixture {
	t.Helper()
	store := &fakeTokenStore{}
	session := NewSessionUseCase(store, time.Hour, testLogger())
	cat := testCatalog(t)
	chat := NewChatUseCase(session, FeatureGate{}, backend, cat, testLogger())
	goal := NewGoalUseCase(session, FeatureGate{}, backend, chat, cat, testLogger())
	session.OnChange(func(s model.Session) {
		goal.HandleSessionChange(context.Background(), s)
	})
	return &goalFixture{session: session, backend: backend, chat: chat, goal: goal}
}

func assistantTexts(msgs []model.Message) []string {
	var out []string
	for _, m := range msgs {
		if m.Author == model.AuthorAssistant {
			out = append(out, m.Text)
		}
	}
	return out
}

func TestGoalFetchOnLoginWithExistingGoal(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{goalText: "Lose 5kg in 3 months"})

	f.session.Login("tok", model.User{ID: 7})

	if !f.goal.HasGoal() {
		t.Fatalf("HasGoal = false after successful fetch")
	}
	if f.goal.State() != GoalHasGoal {
		t.Fatalf("state = %s, want %s", f.goal.State(), GoalHasGoal)
	}
	texts := assistantTexts(f.chat.Messages())
	if len(texts) != 1 || !strings.Contains(texts[0], "Lose 5kg in 3 months") {
		t.Fatalf("expected one welcome-back notice with the goal text, got %v", texts)
	}
}

func TestGoalFetchOnLoginWithoutGoalInvitesOnce(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{getGoalErr: domain.ErrGoalNotSet})

	f.session.Login("tok", model.User{ID: 7})

	if f.goal.HasGoal() {
		t.Fatalf("HasGoal = true with no goal set")
	}
	if f.goal.State() != GoalNoGoal {
		t.Fatalf("state = %s, want %s", f.goal.State(), GoalNoGoal)
	}
	texts := assistantTexts(f.chat.Messages())
	if len(texts) != 1 || !strings.Contains(texts[0], "haven't set a health goal") {
		t.Fatalf("expected exactly one invitation notice, got %v", texts)
	}
}

func TestGoalFetchFailureStaysSilent(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{getGoalErr: errors.New("backend down")})

	f.session.Login("tok", model.User{ID: 7})

	if f.goal.HasGoal() {
		t.Fatalf("HasGoal = true after fetch failure")
	}
	if texts := assistantTexts(f.chat.Messages()); len(texts) != 0 {
		t.Fatalf("fetch failure produced chat noise: %v", texts)
	}
}

func TestGoalLogoutResetsChatAndGoalState(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{goalText: "Run a 10k"})

	f.session.Login("tok", model.User{ID: 7})
	if !f.goal.HasGoal() {
		t.Fatalf("precondition: goal should be loaded")
	}

	f.session.Logout()

	if f.goal.HasGoal() {
		t.Fatalf("goal flag survived logout")
	}
	if f.goal.State() != GoalIdle {
		t.Fatalf("state = %s after logout, want %s", f.goal.State(), GoalIdle)
	}
	if msgs := f.chat.Messages(); len(msgs) != 0 {
		t.Fatalf("%d chat messages survived logout", len(msgs))
	}
}

func TestGoalSubmitValidationFailureSkipsNetwork(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{getGoalErr: domain.ErrGoalNotSet})
	f.session.Login("tok", model.User{ID: 7})

	form := validGoalForm()
	form.TargetWeight = "abc"

	err := f.goal.SubmitGoal(context.Background(), form)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if f.backend.setGoalCalls != 0 {
		t.Fatalf("invalid form reached the backend %d times", f.backend.setGoalCalls)
	}
}

func TestGoalSubmitRequiresAuthentication(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{})

	err := f.goal.SubmitGoal(context.Background(), validGoalForm())
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("err = %v, want ErrNotAuthenticated", err)
	}
	if f.backend.setGoalCalls != 0 {
		t.Fatalf("anonymous submit reached the backend")
	}
}

func TestGoalSubmitSuccess(t *testing.T) {
	f := newGoalFixture(t, &fakeBackend{getGoalErr: domain.ErrGoalNotSet})
	f.session.Login("tok", model.User{ID: 7})
	f.goal.OpenEditor()

	if err := f.goal.SubmitGoal(context.Background(), validGoalForm()); err != nil {
		t.Fatalf("SubmitGoal: %v", err)
	}
	if !f.goal.HasGoal() {
		t.Fatalf("HasGoal = false after successful submit")
	}
	if f.goal.EditorOpen() {
		t.Fatalf("editor still open after successful submit")
	}
	if f.backend.lastGoal == nil || f.backend.lastGoal.GoalType != model.GoalWeightLoss {
		t.Fatalf("backend received %+v", f.backend.lastGoal)
	}

	texts := assistantTexts(f.chat.Messages())
	if len(texts) == 0 || !strings.Contains(texts[len(texts)-1], "has been saved") {
		t.Fatalf("missing confirmation notice, got %v", texts)
	}
}

func TestGoalSubmitBackendDetailSurfacesVerbatim(t *testing.T) {
	backend := &fakeBackend{
		getGoalErr: domain.ErrGoalNotSet,
		setGoalErr: &domain.APIError{Status: 422, Detail: "target weight unrealistic"},
	}
	f := newGoalFixture(t, backend)
	f.session.Login("tok", model.User{ID: 7})
	f.goal.OpenEditor()

	err := f.goal.SubmitGoal(context.Background(), validGoalForm())
	if err == nil || err.Error() != "target weight unrealistic" {
		t.Fatalf("err = %v, want server detail verbatim", err)
	}
	if !f.goal.EditorOpen() {
		t.Fatalf("editor closed after failed submit")
	}
	if f.goal.HasGoal() {
		t.Fatalf("HasGoal flipped despite failure")
	}
}

func TestGoalSubmitGenericFailureUsesFallbackMessage(t *testing.T) {
	backend := &fakeBackend{
		getGoalErr: domain.ErrGoalNotSet,
		setGoalErr: errors.New("connection refused"),
	}
	f := newGoalFixture(t, backend)
	f.session.Login("tok", model.User{ID: 7})

	err := f.goal.SubmitGoal(context.Background(), validGoalForm())
	if err == nil || !strings.Contains(err.Error(), "something went wrong") {
		t.Fatalf("err = %v, want fallback save message", err)
	}
}
