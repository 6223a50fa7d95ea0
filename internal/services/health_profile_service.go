package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

var (
	ErrHealthProfileNotFound = errors.New("health profile not found")
	ErrInvalidHealthProfile  = errors.New("invalid health profile")
)

type HealthProfileStore interface {
	HealthProfileReader
	Upsert(ctx context.Context, profile *models.HealthProfile) error
}

type UserGoalWriter interface {
	UpdateByID(ctx context.Context, userID uint, updates map[string]any) error
}

type HealthProfileInput struct {
	Age             int
	Gender          string
	Height          float64
	Weight          float64
	ActivityLevel   string
	FamilyHistory   string
	SugarIntake     string
	SleepHours      float64
	StressLevel     string
	WorkoutsPerWeek *int
}

type DiseaseAwareness struct {
	DiseaseName    string   `json:"disease_name"`
	Score          int      `json:"score"`
	RiskLevel      string   `json:"risk_level"`
	Factors        []string `json:"factors"`
	PreventionTips []string `json:"prevention_tips"`
	Disclaimer     string   `json:"disclaimer"`
}

type HealthProfileService struct {
	profiles HealthProfileStore
	users    UserGoalWriter
	now      func() time.Time
}

func NewHealthProfileService(profiles HealthProfileStore, users UserGoalWriter) *HealthProfileService {
	return &HealthProfileService{profiles: profiles, users: users, now: time.Now}
}

// Save replaces the whole profile, stores the derived BMI and mirrors
// workouts_per_week onto the user record for goal resolution.
func (service *HealthProfileService) Save(ctx context.Context, userID uint, input HealthProfileInput) (float64, error) {
	if err := validateHealthProfileInput(input); err != nil {
		return 0, err
	}

	bmi := ComputeBMI(input.Weight, input.Height)
	now := service.now().UTC()
	profile := models.HealthProfile{
		UserID:          userID,
		Age:             input.Age,
		Gender:          strings.TrimSpace(input.Gender),
		Height:          input.Height,
		Weight:          input.Weight,
		BMI:             bmi,
		ActivityLevel:   normalizeChoice(input.ActivityLevel),
		FamilyHistory:   normalizeChoice(input.FamilyHistory),
		SugarIntake:     normalizeChoice(input.SugarIntake),
		SleepHours:      input.SleepHours,
		StressLevel:     normalizeChoice(input.StressLevel),
		WorkoutsPerWeek: input.WorkoutsPerWeek,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := service.profiles.Upsert(ctx, &profile); err != nil {
		return 0, err
	}

	if input.WorkoutsPerWeek != nil && service.users != nil {
		if err := service.users.UpdateByID(ctx, userID, map[string]any{
			"workouts_per_week": float64(*input.WorkoutsPerWeek),
		}); err != nil {
			return 0, err
		}
	}
	return bmi, nil
}

// DiseaseAwareness scores the stored profile alone, without tracker data.
func (service *HealthProfileService) DiseaseAwareness(ctx context.Context, userID uint) ([]DiseaseAwareness, error) {
	profile, found, err := service.profiles.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrHealthProfileNotFound
	}
	return ScoreProfileDiseases(profile), nil
}

func ScoreProfileDiseases(profile models.HealthProfile) []DiseaseAwareness {
	lowActivity := profile.ActivityLevel == "low"

	obesity := newDiseaseAwareness("Obesity", []string{
		"Increase physical activity (aim for 150 mins/week of moderate activity)",
		"Reduce intake of high-sugar foods and beverages",
		"Follow a balanced calorie-controlled diet",
	})
	obesity.add(profile.BMI >= 27, 2, "BMI >= 27")
	obesity.add(lowActivity, 2, "Low physical activity")
	obesity.add(profile.SugarIntake == "high", 1, "High sugar intake")

	diabetes := newDiseaseAwareness("Type 2 Diabetes", []string{
		"Maintain healthy weight and BMI",
		"Limit sugary foods and refined carbs",
		"Regular physical activity and routine screening",
	})
	diabetes.add(profile.BMI >= 25, 2, "BMI >= 25")
	diabetes.add(profile.FamilyHistory == "yes", 2, "Family history of diabetes")
	diabetes.add(lowActivity, 1, "Low physical activity")

	hypertension := newDiseaseAwareness("Hypertension", []string{
		"Manage stress through relaxation and sleep hygiene",
		"Increase physical activity",
		"Reduce sodium intake and follow a healthy diet",
	})
	hypertension.add(profile.Age >= 40, 2, "Age >= 40")
	hypertension.add(profile.StressLevel == "high", 2, "High stress level")
	hypertension.add(lowActivity, 1, "Low physical activity")

	results := []DiseaseAwareness{*obesity, *diabetes, *hypertension}
	for index := range results {
		results[index].RiskLevel = profileRiskLevel(results[index].Score)
	}
	return results
}

func newDiseaseAwareness(name string, tips []string) *DiseaseAwareness {
	return &DiseaseAwareness{
		DiseaseName:    name,
		Factors:        []string{},
		PreventionTips: tips,
		Disclaimer:     AwarenessDisclaimer,
	}
}

func (item *DiseaseAwareness) add(matched bool, points int, factor string) {
	if !matched {
		return
	}
	item.Score += points
	item.Factors = append(item.Factors, factor)
}

// profileRiskLevel: up to 2 is Low, 3-5 Moderate, above that High.
func profileRiskLevel(score int) string {
	switch {
	case score <= 2:
		return "Low"
	case score <= 5:
		return "Moderate"
	default:
		return "High"
	}
}

func validateHealthProfileInput(input HealthProfileInput) error {
	if input.Age < 0 || input.Age > 130 {
		return ErrInvalidHealthProfile
	}
	if input.Height < 0 || input.Weight < 0 || input.SleepHours < 0 || input.SleepHours > 24 {
		return ErrInvalidHealthProfile
	}
	if input.WorkoutsPerWeek != nil && (*input.WorkoutsPerWeek < 0 || *input.WorkoutsPerWeek > 14) {
		return ErrInvalidHealthProfile
	}
	return nil
}

func normalizeChoice(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
