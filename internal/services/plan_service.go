package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"github.com/tidwall/gjson"
	"gorm.io/datatypes"
)

const (
	DefaultPlanListLimit = 20
	MaxPlanListLimit     = 100
)

var ErrInvalidPlanInputs = errors.New("user_inputs must be a json object")

type PlanStore interface {
	Create(ctx context.Context, plan *models.Plan) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Plan, error)
}

type PlanInput struct {
	UserInputs      []byte
	ClassifierLabel string
	PlanText        string
}

// PlanService stores plans produced elsewhere. The label and text are kept
// as given; only user_inputs is read back, for goal resolution.
type PlanService struct {
	plans PlanStore
	now   func() time.Time
}

func NewPlanService(plans PlanStore) *PlanService {
	return &PlanService{plans: plans, now: time.Now}
}

func (service *PlanService) Save(ctx context.Context, userID uint, input PlanInput) (models.Plan, error) {
	raw := []byte(strings.TrimSpace(string(input.UserInputs)))
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return models.Plan{}, ErrInvalidPlanInputs
	}

	plan := models.Plan{
		UserID:          userID,
		UserInputs:      datatypes.JSON(raw),
		ClassifierLabel: strings.TrimSpace(input.ClassifierLabel),
		PlanText:        input.PlanText,
		CreatedAt:       service.now().UTC(),
	}
	if err := service.plans.Create(ctx, &plan); err != nil {
		return models.Plan{}, err
	}
	return plan, nil
}

// List returns the newest plans first. limit <= 0 means the default page.
func (service *PlanService) List(ctx context.Context, userID uint, limit int) ([]models.Plan, error) {
	if limit <= 0 {
		limit = DefaultPlanListLimit
	}
	return service.plans.ListByUser(ctx, userID, min(limit, MaxPlanListLimit))
}
