// Package backend is the HTTP client for the HealthAI API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ai-health-assistant/internal/domain"
	"ai-health-assistant/internal/domain/model"
	"ai-health-assistant/internal/domain/ports/adapter"
	"ai-health-assistant/internal/infra/metrics"
)

// Compile-time check
var _ adapter.Backend = (*Client)(nil)

// Client implements adapter.Backend using direct HTTP calls against the
// configured base URL (e.g. http://localhost:8000/api/v1).
type Client struct {
	baseURL string
	client  *http.Client
	log     *zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}
}

// Login posts OAuth2 password-grant form fields; the email doubles as the
// form username.
func (c *Client) Login(ctx context.Context, email, password string) (*adapter.LoginResult, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req, "auth_login", "")
	if err != nil {
		return nil, err
	}

	var response struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		UserID      int64  `json:"user_id"`
		Name        string `json:"name"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	return &adapter.LoginResult{
		Token: response.AccessToken,
		User:  model.User{ID: response.UserID, Name: response.Name, Email: email},
	}, nil
}

// Chat posts the user's message and returns the assistant reply.
func (c *Client) Chat(ctx context.Context, token, message string) (string, error) {
	body, err := c.postJSON(ctx, "/chat", "chat", token, map[string]string{"message": message})
	if err != nil {
		return "", err
	}

	var response struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal chat response: %w", err)
	}
	return response.Response, nil
}

// SetGoal posts the normalized goal payload. Non-2xx responses surface as
// *domain.APIError with the server's detail message.
func (c *Client) SetGoal(ctx context.Context, token string, goal *model.Goal) error {
	_, err := c.postJSON(ctx, "/goal/set", "goal_set", token, goal)
	return err
}

// GetGoal fetches the current goal text; 404 means no goal has been set.
func (c *Client) GetGoal(ctx context.Context, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/goal/get", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req, "goal_get", token)
	if err != nil {
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return "", domain.ErrGoalNotSet
		}
		return "", err
	}

	var response struct {
		GoalText string `json:"goal_text"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal goal response: %w", err)
	}
	return response.GoalText, nil
}

// Summary fetches the daily dashboard snapshot for a user.
func (c *Client) Summary(ctx context.Context, userID string) (*model.DailySummary, error) {
	u := c.baseURL + "/summary?user_id=" + url.QueryEscape(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := c.do(req, "summary", "")
	if err != nil {
		return nil, err
	}

	var response struct {
		Status       string                          `json:"status"`
		Date         string                          `json:"date"`
		Metrics      model.SummaryMetrics            `json:"metrics"`
		GoalProgress map[string]model.MetricProgress `json:"goal_progress"`
		DailyTip     string                          `json:"daily_tip"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary response: %w", err)
	}

	return &model.DailySummary{
		Date:         response.Date,
		Metrics:      response.Metrics,
		GoalProgress: response.GoalProgress,
		DailyTip:     response.DailyTip,
	}, nil
}

// LogMetrics posts one daily metrics row.
func (c *Client) LogMetrics(ctx context.Context, token, userID string, m adapter.MetricsLog) error {
	payload := map[string]any{
		"user_id":      userID,
		"steps":        m.Steps,
		"sleep_hours":  m.SleepHours,
		"water_intake": m.WaterIntake,
		"calories":     m.Calories,
	}
	_, err := c.postJSON(ctx, "/log", "log", token, payload)
	return err
}

// LogFood posts one confirmed food log row.
func (c *Client) LogFood(ctx context.Context, token, userID, item string, calories int) error {
	payload := map[string]any{
		"user_id":   userID,
		"item_name": item,
		"calories":  calories,
		"confirmed": true,
	}
	_, err := c.postJSON(ctx, "/log/food", "log_food", token, payload)
	return err
}

func (c *Client) postJSON(ctx context.Context, path, endpoint, token string, payload any) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request data: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, endpoint, token)
}

// do sends the request with the common headers and normalizes non-2xx
// responses into *domain.APIError carrying the server's detail message.
func (c *Client) do(req *http.Request, endpoint, token string) ([]byte, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveBackend(endpoint, 0, time.Since(start))
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()
	metrics.ObserveBackend(endpoint, resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := extractDetail(body)
		c.log.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("detail", detail).
			Msg("backend request failed")
		return nil, &domain.APIError{Status: resp.StatusCode, Detail: detail}
	}
	return body, nil
}

func extractDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}
