package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/fitsense/internal/models"
)

func TestGoalsFromPlanInputs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Goals
	}{
		{name: "empty", raw: "", want: Goals{Calories: 2000, Protein: 75, WorkoutsPerWeek: 3}},
		{name: "invalid json", raw: "{not json", want: DefaultGoals()},
		{
			name: "daily goals win",
			raw:  `{"daily_goals":{"calories":2400,"protein":140},"goals":{"calories":1800},"calories_goal":1500,"workouts_per_week":5}`,
			want: Goals{Calories: 2400, Protein: 140, WorkoutsPerWeek: 5},
		},
		{
			name: "goals object when daily goals empty",
			raw:  `{"daily_goals":{},"goals":{"calories":1800,"protein":90}}`,
			want: Goals{Calories: 1800, Protein: 90, WorkoutsPerWeek: 3},
		},
		{
			name: "flat keys",
			raw:  `{"calories_goal":2100,"protein_goal":110,"planned_workouts_per_week":4}`,
			want: Goals{Calories: 2100, Protein: 110, WorkoutsPerWeek: 4},
		},
		{
			name: "zero nested falls to flat then default",
			raw:  `{"daily_goals":{"calories":0,"protein":0},"calories_goal":1900}`,
			want: Goals{Calories: 1900, Protein: 75, WorkoutsPerWeek: 3},
		},
		{
			name: "numeric strings are read",
			raw:  `{"goals":{"calories":"2200"}}`,
			want: Goals{Calories: 2200, Protein: 75, WorkoutsPerWeek: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GoalsFromPlanInputs([]byte(tt.raw)); got != tt.want {
				t.Fatalf("GoalsFromPlanInputs() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestGoalResolverPrefersLatestPlan(t *testing.T) {
	plans := &stubPlans{plans: []models.Plan{
		{UserID: 1, UserInputs: []byte(`{"calories_goal":1500}`)},
		{UserID: 1, UserInputs: []byte(`{"calories_goal":2500}`)},
	}}
	users := &stubUsers{users: map[uint]models.User{1: {ID: 1, CaloriesGoal: ptr(1800.0)}}}

	got := NewGoalResolver(plans, users, nil).Resolve(context.Background(), 1)
	if got.Calories != 2500 {
		t.Fatalf("expected latest plan calories 2500, got %v", got.Calories)
	}
}

func TestGoalResolverFallsBackToUserRecord(t *testing.T) {
	users := &stubUsers{users: map[uint]models.User{1: {
		ID:              1,
		CaloriesGoal:    ptr(1800.0),
		ProteinGoal:     ptr(0.0),
		WorkoutsPerWeek: ptr(4.0),
	}}}

	got := NewGoalResolver(&stubPlans{}, users, nil).Resolve(context.Background(), 1)
	want := Goals{Calories: 1800, Protein: DefaultProteinGoal, WorkoutsPerWeek: 4}
	if got != want {
		t.Fatalf("Resolve() = %+v, want %+v", got, want)
	}
}

func TestGoalResolverNeverFails(t *testing.T) {
	plans := &stubPlans{err: errors.New("plans unavailable")}
	users := &stubUsers{err: errors.New("users unavailable")}

	got := NewGoalResolver(plans, users, nil).Resolve(context.Background(), 1)
	if got != DefaultGoals() {
		t.Fatalf("expected defaults, got %+v", got)
	}

	got = NewGoalResolver(nil, nil, nil).Resolve(context.Background(), 1)
	if got != (Goals{Calories: 2000, Protein: 75, WorkoutsPerWeek: 3}) {
		t.Fatalf("expected defaults without sources, got %+v", got)
	}
}
