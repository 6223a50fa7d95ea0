package services

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/fitsense/internal/models"
)

var (
	ErrInvalidSyncSource    = errors.New("invalid source")
	ErrInvalidSyncSteps     = errors.New("steps must be 0-50000")
	ErrInvalidSyncSleep     = errors.New("sleep hours must be 0-24")
	ErrInvalidSyncHeartRate = errors.New("heart rate must be 30-150 bpm")
)

type HealthSyncStore interface {
	HealthSyncLatestReader
	Create(ctx context.Context, record *models.HealthSyncRecord) error
}

type HealthSyncInput struct {
	AvgSteps         int
	AvgSleepHours    float64
	RestingHeartRate *int
	Source           string
}

type HealthSyncStatus struct {
	UserID   uint                     `json:"user_id"`
	IsSynced bool                     `json:"is_synced"`
	LastSync *time.Time               `json:"last_sync"`
	Data     *models.HealthSyncRecord `json:"data"`
}

type HealthSyncService struct {
	records HealthSyncStore
	now     func() time.Time
	newID   func() string
}

func NewHealthSyncService(records HealthSyncStore) *HealthSyncService {
	return &HealthSyncService{
		records: records,
		now:     time.Now,
		newID:   func() string { return uuid.NewString() },
	}
}

func (service *HealthSyncService) Sync(ctx context.Context, userID uint, input HealthSyncInput) (models.HealthSyncRecord, error) {
	if err := ValidateHealthSyncInput(input); err != nil {
		return models.HealthSyncRecord{}, err
	}

	now := service.now().UTC()
	record := models.HealthSyncRecord{
		PublicID:         service.newID(),
		UserID:           userID,
		AvgSteps:         input.AvgSteps,
		AvgSleepHours:    input.AvgSleepHours,
		RestingHeartRate: input.RestingHeartRate,
		Source:           input.Source,
		ConfidenceScore:  SyncConfidenceScore(input),
		SyncedAt:         now,
		CreatedAt:        now,
	}
	if err := service.records.Create(ctx, &record); err != nil {
		return models.HealthSyncRecord{}, err
	}
	return record, nil
}

func (service *HealthSyncService) Status(ctx context.Context, userID uint) (HealthSyncStatus, error) {
	record, found, err := service.records.Latest(ctx, userID)
	if err != nil {
		return HealthSyncStatus{}, err
	}
	if !found {
		return HealthSyncStatus{UserID: userID}, nil
	}
	syncedAt := record.SyncedAt
	return HealthSyncStatus{
		UserID:   userID,
		IsSynced: true,
		LastSync: &syncedAt,
		Data:     &record,
	}, nil
}

func ValidateHealthSyncInput(input HealthSyncInput) error {
	switch input.Source {
	case models.SyncSourcePhoneApp, models.SyncSourceSmartwatch, models.SyncSourceManual:
	default:
		return ErrInvalidSyncSource
	}
	if input.AvgSteps < 0 || input.AvgSteps > 50000 {
		return ErrInvalidSyncSteps
	}
	if input.AvgSleepHours < 0 || input.AvgSleepHours > 24 {
		return ErrInvalidSyncSleep
	}
	if rate := input.RestingHeartRate; rate != nil && (*rate < 30 || *rate > 150) {
		return ErrInvalidSyncHeartRate
	}
	return nil
}

// SyncConfidenceScore starts at 0.8, adds 0.2 when a heart rate is present
// and is capped per source.
func SyncConfidenceScore(input HealthSyncInput) float64 {
	score := 0.8
	if input.RestingHeartRate != nil {
		score += 0.2
	}
	switch input.Source {
	case models.SyncSourceSmartwatch:
		score = math.Min(score, 0.95)
	case models.SyncSourcePhoneApp:
		score = math.Min(score, 0.85)
	default:
		score = math.Min(score, 0.75)
	}
	return roundTo(score, 2)
}
