package adapter

import (
	"context"

	"ai-health-assistant/internal/domain/model"
)

// LoginResult is the identity half of a successful /auth/login call.
type LoginResult struct {
	Token string
	User  model.User
}

// MetricsLog is one /log write; only the field matching the logged entry
// type is set.
type MetricsLog struct {
	Steps       int
	SleepHours  float64
	WaterIntake float64
	Calories    float64
}

// Backend is the remote HealthAI API. Implementations must translate
// transport failures into errors, never panics; a 404 on GetGoal maps to
// domain.ErrGoalNotSet and other non-2xx responses to *domain.APIError.
type Backend interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Chat(ctx context.Context, token, message string) (reply string, err error)
	SetGoal(ctx context.Context, token string, goal *model.Goal) error
	GetGoal(ctx context.Context, token string) (goalText string, err error)
	Summary(ctx context.Context, userID string) (*model.DailySummary, error)
	LogMetrics(ctx context.Context, token, userID string, m MetricsLog) error
	LogFood(ctx context.Context, token, userID, item string, calories int) error
}
