package model

// SummaryMetrics are the aggregated daily numbers from /summary.
type SummaryMetrics struct {
	TotalSteps            int     `json:"total_steps"`
	AvgSleepHours         float64 `json:"avg_sleep_hours"`
	AvgWaterIntake        float64 `json:"avg_water_intake"`
	TotalCaloriesConsumed float64 `json:"total_calories_consumed"`
}

// MetricProgress is one tracked dimension of goal progress (calories,
// water, sleep, steps), progress capped at 100 by the server.
type MetricProgress struct {
	Current  float64 `json:"current"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
}

// DailySummary is the dashboard snapshot for one day.
type DailySummary struct {
	Date         string
	Metrics      SummaryMetrics
	GoalProgress map[string]MetricProgress
	DailyTip     string
}
