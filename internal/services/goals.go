package services

import (
	"context"
	"log/slog"

	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/tidwall/gjson"
)

const (
	DefaultCaloriesGoal        = 2000.0
	DefaultProteinGoal         = 75.0
	DefaultWorkoutsPerWeekGoal = 3.0
)

type Goals struct {
	Calories        float64 `json:"calories"`
	Protein         float64 `json:"protein"`
	WorkoutsPerWeek float64 `json:"workouts_per_week"`
}

func DefaultGoals() Goals {
	return Goals{
		Calories:        DefaultCaloriesGoal,
		Protein:         DefaultProteinGoal,
		WorkoutsPerWeek: DefaultWorkoutsPerWeekGoal,
	}
}

type GoalPlanReader interface {
	LatestByUser(ctx context.Context, userID uint) (models.Plan, bool, error)
}

type GoalUserReader interface {
	FindByID(ctx context.Context, userID uint) (models.User, bool, error)
}

type GoalResolver struct {
	plans  GoalPlanReader
	users  GoalUserReader
	logger *slog.Logger
}

func NewGoalResolver(plans GoalPlanReader, users GoalUserReader, logger *slog.Logger) *GoalResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &GoalResolver{plans: plans, users: users, logger: logger}
}

// Resolve never fails: lookup errors fall through to the next source and the
// defaults are the last resort.
func (resolver *GoalResolver) Resolve(ctx context.Context, userID uint) Goals {
	if resolver.plans != nil {
		plan, found, err := resolver.plans.LatestByUser(ctx, userID)
		switch {
		case err != nil:
			resolver.logger.Warn("goal lookup: latest plan unavailable", "user_id", userID, "error", err)
		case found:
			return GoalsFromPlanInputs(plan.UserInputs)
		}
	}

	if resolver.users != nil {
		user, found, err := resolver.users.FindByID(ctx, userID)
		switch {
		case err != nil:
			resolver.logger.Warn("goal lookup: user record unavailable", "user_id", userID, "error", err)
		case found:
			return GoalsFromUser(user)
		}
	}

	return DefaultGoals()
}

// GoalsFromPlanInputs reads daily_goals (or goals) first, then the flat
// *_goal keys. Zero and missing values fall back to the defaults.
func GoalsFromPlanInputs(raw []byte) Goals {
	goals := DefaultGoals()
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return goals
	}

	nested := gjson.GetBytes(raw, "daily_goals")
	if !nonEmptyObject(nested) {
		nested = gjson.GetBytes(raw, "goals")
	}
	if !nonEmptyObject(nested) {
		nested = gjson.Result{}
	}

	goals.Calories = firstNonZero(goals.Calories, nested.Get("calories"), gjson.GetBytes(raw, "calories_goal"))
	goals.Protein = firstNonZero(goals.Protein, nested.Get("protein"), gjson.GetBytes(raw, "protein_goal"))
	goals.WorkoutsPerWeek = firstNonZero(goals.WorkoutsPerWeek, gjson.GetBytes(raw, "workouts_per_week"), gjson.GetBytes(raw, "planned_workouts_per_week"))
	return goals
}

func GoalsFromUser(user models.User) Goals {
	goals := DefaultGoals()
	if user.CaloriesGoal != nil && *user.CaloriesGoal != 0 {
		goals.Calories = *user.CaloriesGoal
	}
	if user.ProteinGoal != nil && *user.ProteinGoal != 0 {
		goals.Protein = *user.ProteinGoal
	}
	if user.WorkoutsPerWeek != nil && *user.WorkoutsPerWeek != 0 {
		goals.WorkoutsPerWeek = *user.WorkoutsPerWeek
	}
	return goals
}

func nonEmptyObject(value gjson.Result) bool {
	return value.IsObject() && len(value.Map()) > 0
}

func firstNonZero(fallback float64, candidates ...gjson.Result) float64 {
	for _, candidate := range candidates {
		if !candidate.Exists() {
			continue
		}
		if parsed := candidate.Float(); parsed != 0 {
			return parsed
		}
	}
	return fallback
}
