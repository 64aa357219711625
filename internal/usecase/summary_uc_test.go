// File: internal/usecase/summary_uc_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"ai-health-assistant/internal/domain/model"
)

func TestSummaryDaily(t *testing.T) {
	backend := &fakeBackend{summary: &model.DailySummary{
		Date:     "2026-08-30",
		Metrics:  model.SummaryMetrics{TotalSteps: 8000, AvgSleepHours: 7.5},
		DailyTip: "Drink water.",
	}}
	uc := NewSummaryUseCase(backend, testLogger())

	sum, err := uc.Daily(context.Background(), "42")
	if err != nil {
		t.Fatalf("Daily: %v", err)
	}
	if sum.Metrics.TotalSteps != 8000 || sum.DailyTip != "Drink water." {
		t.Fatalf("summary = %+v", sum)
	}
}

func TestSummaryDailyPropagatesError(t *testing.T) {
	wantErr := errors.New("backend down")
	uc := NewSummaryUseCase(&fakeBackend{summaryErr: wantErr}, testLogger())

	if _, err := uc.Daily(context.Background(), "42"); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}
