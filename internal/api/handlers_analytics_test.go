package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/fitsense/internal/services"
)

func TestWeeklySummaryFillsEveryDay(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "weekly@example.com")

	env.requestJSON(t, http.MethodPost, "/api/food/log", token, map[string]any{
		"food_name": "chicken breast", "quantity": 200, "meal_type": "dinner", "date": "2026-09-08",
	}, http.StatusCreated, nil)

	summary := services.WeeklySummary{}
	env.requestJSON(t, http.MethodGet, "/api/analytics/weekly-summary", token, nil, http.StatusOK, &summary)
	require.Len(t, summary.Days, 7)
	assert.Equal(t, "2026-09-04", summary.Days[0].Date)
	assert.Equal(t, "2026-09-10", summary.Days[6].Date)
	assert.Equal(t, 330.0, summary.Days[4].Calories)
	assert.Equal(t, 0.0, summary.Days[5].Calories)
	assert.Equal(t, services.DefaultCaloriesGoal, summary.Days[0].CaloriesGoal)
	assert.Equal(t, 0.43, summary.Days[0].WorkoutsPlanned)
}

func TestSummaryRangeValidation(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "range@example.com")

	tests := []struct {
		name    string
		query   string
		message string
	}{
		{name: "bad start", query: "?start_date=2026-13-01", message: "invalid start_date"},
		{name: "bad end", query: "?end_date=tomorrow", message: "invalid end_date"},
		{name: "end before start", query: "?start_date=2026-09-10&end_date=2026-09-01", message: "invalid date range"},
		{name: "too long", query: "?start_date=2024-01-01&end_date=2026-09-01", message: "invalid date range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, path := range []string{"/api/analytics/weekly-summary", "/api/analytics/adherence-score"} {
				status, body := env.request(t, http.MethodGet, path+tt.query, token, nil)
				if status != http.StatusBadRequest {
					t.Fatalf("%s: expected 400, got %d", path, status)
				}
				if message := readAPIError(t, body); message != tt.message {
					t.Fatalf("%s: expected %q, got %q", path, tt.message, message)
				}
			}
		})
	}
}

func TestAdherenceScoreUsesPlanGoals(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "adherence@example.com")

	empty := services.AdherenceScore{}
	env.requestJSON(t, http.MethodGet, "/api/analytics/adherence-score", token, nil, http.StatusOK, &empty)
	assert.Equal(t, 0, empty.Score)

	env.requestJSON(t, http.MethodPost, "/api/plans", token, map[string]any{
		"user_inputs": map[string]any{"daily_goals": map[string]any{"calories": 330, "protein": 62}, "workouts_per_week": 7},
	}, http.StatusCreated, nil)
	env.requestJSON(t, http.MethodPost, "/api/food/log", token, map[string]any{
		"food_name": "chicken breast", "quantity": 200, "meal_type": "lunch",
	}, http.StatusCreated, nil)

	score := services.AdherenceScore{}
	env.requestJSON(t, http.MethodGet, "/api/analytics/adherence-score?start_date=2026-09-10&end_date=2026-09-10", token, nil, http.StatusOK, &score)
	assert.Equal(t, 70, score.Score)
	assert.Equal(t, services.AdherenceDetails{Calories: 100, Protein: 100, Workouts: 0}, score.Details)

	summary := services.WeeklySummary{}
	env.requestJSON(t, http.MethodGet, "/api/analytics/weekly-summary", token, nil, http.StatusOK, &summary)
	assert.Equal(t, 330.0, summary.Days[6].CaloriesGoal)
	assert.Equal(t, 1.0, summary.Days[6].WorkoutsPlanned)
}

func TestStreaksForNewUserAreZero(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "streaks@example.com")

	streaks := services.Streaks{}
	env.requestJSON(t, http.MethodGet, "/api/analytics/streaks", token, nil, http.StatusOK, &streaks)
	assert.Equal(t, services.Streaks{}, streaks)
}
