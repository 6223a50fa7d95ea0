package api

import (
	"net/http"
	"testing"

	"github.com/terraincognita07/fitsense/internal/models"
)

func TestFoodLogFlow(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "food@example.com")

	created := models.DailyFoodLog{}
	env.requestJSON(t, http.MethodPost, "/api/food/log", token, map[string]any{
		"food_name": "chicken breast",
		"quantity":  200,
		"meal_type": "lunch",
		"date":      "2026-09-10",
	}, http.StatusCreated, &created)
	if created.TotalMacros.Calories != 330 || len(created.Meals[models.MealLunch]) != 1 {
		t.Fatalf("unexpected created log %+v", created)
	}

	daily := models.DailyFoodLog{}
	env.requestJSON(t, http.MethodGet, "/api/food/daily", token, nil, http.StatusOK, &daily)
	if daily.ID != created.ID || daily.TotalMacros.Protein != 62 {
		t.Fatalf("expected today's log to default to the created one, got %+v", daily)
	}

	watered := models.DailyFoodLog{}
	env.requestJSON(t, http.MethodPost, "/api/food/water", token, map[string]any{"amount_ml": 1500}, http.StatusOK, &watered)
	if watered.WaterML == nil || *watered.WaterML != 1500 || watered.TotalMacros.Calories != 330 {
		t.Fatalf("expected water on the same log, got %+v", watered)
	}

	afterDelete := models.DailyFoodLog{}
	env.requestJSON(t, http.MethodDelete, "/api/food/log/2026-09-10/lunch/0", token, nil, http.StatusOK, &afterDelete)
	if afterDelete.TotalMacros.Calories != 0 || len(afterDelete.Meals[models.MealLunch]) != 0 {
		t.Fatalf("expected totals to drop to zero, got %+v", afterDelete)
	}

	status, body := env.request(t, http.MethodDelete, "/api/food/log/2026-09-10/lunch/0", token, nil)
	if status != http.StatusNotFound || readAPIError(t, body) != "food entry not found" {
		t.Fatalf("expected 404 for removed entry, got %d %s", status, string(body))
	}
}

func TestFoodLogValidationErrors(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "food-errors@example.com")

	tests := []struct {
		name    string
		method  string
		path    string
		body    any
		status  int
		message string
	}{
		{name: "bad meal", method: http.MethodPost, path: "/api/food/log", body: map[string]any{"food_name": "Apple", "quantity": 100, "meal_type": "brunch"}, status: http.StatusBadRequest, message: "invalid meal type"},
		{name: "unknown food", method: http.MethodPost, path: "/api/food/log", body: map[string]any{"food_name": "dragon steak", "quantity": 100, "meal_type": "dinner"}, status: http.StatusNotFound, message: "food item not found"},
		{name: "bad date", method: http.MethodPost, path: "/api/food/log", body: map[string]any{"food_name": "Apple", "quantity": 100, "meal_type": "dinner", "date": "10/09/2026"}, status: http.StatusBadRequest, message: "invalid date"},
		{name: "too much water", method: http.MethodPost, path: "/api/food/water", body: map[string]any{"amount_ml": 20000}, status: http.StatusBadRequest, message: "invalid water amount"},
		{name: "bad index", method: http.MethodDelete, path: "/api/food/log/2026-09-10/lunch/x", status: http.StatusBadRequest, message: "invalid entry index"},
		{name: "missing day", method: http.MethodDelete, path: "/api/food/log/2026-09-01/lunch/0", status: http.StatusNotFound, message: "daily food log not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := env.request(t, tt.method, tt.path, token, tt.body)
			if status != tt.status {
				t.Fatalf("expected %d, got %d: %s", tt.status, status, string(body))
			}
			if message := readAPIError(t, body); message != tt.message {
				t.Fatalf("expected %q, got %q", tt.message, message)
			}
		})
	}
}

func TestSearchFoods(t *testing.T) {
	env := newTestApp(t)
	_, token := env.createUser(t, "search@example.com")

	var payload struct {
		Foods []models.CatalogFood `json:"foods"`
	}
	env.requestJSON(t, http.MethodGet, "/api/food/search?q=rice&limit=5", token, nil, http.StatusOK, &payload)
	if len(payload.Foods) == 0 || payload.Foods[0].Name != "White Rice" {
		t.Fatalf("expected rice matches, got %+v", payload.Foods)
	}

	status, _ := env.request(t, http.MethodGet, "/api/food/search?limit=abc", token, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", status)
	}
}
