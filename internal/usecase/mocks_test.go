// File: internal/usecase/mocks_test.go
package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/i18n"
)

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func testCatalog(t *testing.T) *i18n.Catalog {
	t.Helper()
	cat, err := i18n.NewCatalog(i18n.LocalesFS, "en")
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat
}

// fakeTokenStore is an in-memory TokenStore with failure injection.
type fakeTokenStore struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	has       bool

	loadErr  error
	saveErr  error
	clearErr error

	saveCalls  int
	clearCalls int
}

func (s *fakeTokenStore) Load() (string, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return "", time.Time{}, s.loadErr
	}
	if !s.has {
		return "", time.Time{}, domain.ErrNotFound
	}
	return s.token, s.expiresAt, nil
}

func (s *fakeTokenStore) Save(token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveCalls++
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token, s.expiresAt, s.has = token, expiresAt, true
	return nil
}

func (s *fakeTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCalls++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token, s.expiresAt, s.has = "", time.Time{}, false
	return nil
}

// fakeBackend records calls and returns scripted responses.
type fakeBackend struct {
	mu sync.Mutex

	chatReply string
	chatErr   error
	chatCalls int

	goalText   string
	getGoalErr error

	setGoalErr   error
	setGoalCalls int
	lastGoal     *model.Goal

	summary    *model.DailySummary
	summaryErr error

	logMetricsErr   error
	logMetricsCalls int
	lastMetrics     adapter.MetricsLog

	logFoodCalls int
	lastFoodItem string
}

func (b *fakeBackend) Login(ctx context.Context, email, password string) (*adapter.LoginResult, error) {
	return &adapter.LoginResult{
		Token: "tok-" + email,
		User:  model.User{ID: 7, Name: "Test User", Email: email},
	}, nil
}

func (b *fakeBackend) Chat(ctx context.Context, token, message string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.chatCalls++
	if b.chatErr != nil {
		return "", b.chatErr
	}
	return b.chatReply, nil
}

func (b *fakeBackend) SetGoal(ctx context.Context, token string, goal *model.Goal) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setGoalCalls++
	b.lastGoal = goal
	return b.setGoalErr
}

func (b *fakeBackend) GetGoal(ctx context.Context, token string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.getGoalErr != nil {
		return "", b.getGoalErr
	}
	return b.goalText, nil
}

func (b *fakeBackend) Summary(ctx context.Context, userID string) (*model.DailySummary, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.summaryErr != nil {
		return nil, b.summaryErr
	}
	return b.summary, nil
}

func (b *fakeBackend) LogMetrics(ctx context.Context, token, userID string, m adapter.MetricsLog) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logMetricsCalls++
	b.lastMetrics = m
	return b.logMetricsErr
}

func (b *fakeBackend) LogFood(ctx context.Context, token, userID, item string, calories int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logFoodCalls++
	b.lastFoodItem = item
	return nil
}

// fakeWeightRepo is an in-memory weight journal, newest first.
type fakeWeightRepo struct {
	mu      sync.Mutex
	entries []*model.WeightEntry
	addErr  error
}

func (r *fakeWeightRepo) Add(ctx context.Context, entry *model.WeightEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return r.addErr
	}
	r.entries = append([]*model.WeightEntry{entry}, r.entries...)
	return nil
}

func (r *fakeWeightRepo) List(ctx context.Context, limit int) ([]*model.WeightEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.entries
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	cp := make([]*model.WeightEntry, len(out))
	copy(cp, out)
	return cp, nil
}

func (r *fakeWeightRepo) Close() error { return nil }

// fakeFoodSource resolves a single known item.
type fakeFoodSource struct {
	items map[string]model.FoodInfo
}

func (f *fakeFoodSource) Lookup(ctx context.Context, name string) (*model.FoodInfo, error) {
	info, ok := f.items[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := info
	return &out, nil
}
