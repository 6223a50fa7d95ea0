package db

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const calendarDayLayout = "2006-01-02"

type WearableSummaryRepository struct {
	database *gorm.DB
}

func NewWearableSummaryRepository(database *gorm.DB) *WearableSummaryRepository {
	return &WearableSummaryRepository{database: database}
}

// ListByUserDayRange matches the stored calendar-day strings for
// dayStart <= date < dayEnd.
func (repo *WearableSummaryRepository) ListByUserDayRange(ctx context.Context, userID uint, dayStart time.Time, dayEnd time.Time) ([]models.WearableDailySummary, error) {
	summaries := make([]models.WearableDailySummary, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, dayStart.Format(calendarDayLayout), dayEnd.Format(calendarDayLayout)).
		Order("date ASC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

func (repo *WearableSummaryRepository) ExistsForDay(ctx context.Context, userID uint, day time.Time) (bool, error) {
	var count int64
	if err := repo.database.WithContext(ctx).
		Model(&models.WearableDailySummary{}).
		Where("user_id = ? AND date = ?", userID, day.Format(calendarDayLayout)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *WearableSummaryRepository) Upsert(ctx context.Context, summary *models.WearableDailySummary) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "sleep_minutes", "resting_heart_rate", "active_minutes", "calories_burned", "source", "created_at",
		}),
	}).Create(summary).Error
}

func (repo *WearableSummaryRepository) LatestCreatedAt(ctx context.Context, userID uint) (*time.Time, error) {
	var summary models.WearableDailySummary
	err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&summary).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary.CreatedAt, nil
}

type WearableTokenRepository struct {
	database *gorm.DB
}

func NewWearableTokenRepository(database *gorm.DB) *WearableTokenRepository {
	return &WearableTokenRepository{database: database}
}

func (repo *WearableTokenRepository) ListAll(ctx context.Context) ([]models.WearableToken, error) {
	tokens := make([]models.WearableToken, 0)
	if err := repo.database.WithContext(ctx).Order("id ASC").Find(&tokens).Error; err != nil {
		return nil, err
	}
	return tokens, nil
}

func (repo *WearableTokenRepository) FindByUser(ctx context.Context, userID uint) (models.WearableToken, bool, error) {
	var token models.WearableToken
	err := repo.database.WithContext(ctx).Where("user_id = ?", userID).First(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WearableToken{}, false, nil
	}
	if err != nil {
		return models.WearableToken{}, false, err
	}
	return token, true, nil
}

func (repo *WearableTokenRepository) Upsert(ctx context.Context, token *models.WearableToken) error {
	return repo.database.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"provider", "access_token", "refresh_token", "scope", "expires_at", "connected_at", "updated_at"}),
	}).Create(token).Error
}

func (repo *WearableTokenRepository) UpdateCredentials(ctx context.Context, userID uint, accessToken string, refreshToken string, expiresAt *time.Time) error {
	return repo.database.WithContext(ctx).Model(&models.WearableToken{}).Where("user_id = ?", userID).Updates(map[string]any{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_at":    expiresAt,
		"updated_at":    time.Now().UTC(),
	}).Error
}

func (repo *WearableTokenRepository) MarkSynced(ctx context.Context, userID uint, syncedAt time.Time) error {
	return repo.database.WithContext(ctx).Model(&models.WearableToken{}).Where("user_id = ?", userID).Updates(map[string]any{
		"last_synced_at": syncedAt,
		"updated_at":     syncedAt,
	}).Error
}
