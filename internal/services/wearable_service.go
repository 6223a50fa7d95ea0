package services

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/fitsense/internal/models"
)

const (
	DefaultWearableRangeDays = 7
	wearableProviderNone     = "none"
)

type WearableTokenReader interface {
	FindByUser(ctx context.Context, userID uint) (models.WearableToken, bool, error)
}

type WearableSummaryStatusReader interface {
	WearableSummaryRangeReader
	LatestCreatedAt(ctx context.Context, userID uint) (*time.Time, error)
}

type WearableSummary struct {
	AvgSteps            int      `json:"avg_steps"`
	AvgSleepMinutes     int      `json:"avg_sleep_minutes"`
	AvgRestingHeartRate *float64 `json:"avg_resting_heart_rate"`
	AvgActiveMinutes    int      `json:"avg_active_minutes"`
	AvgCaloriesBurned   float64  `json:"avg_calories_burned"`
	CountDays           int      `json:"count_days"`
}

type WearableStatus struct {
	UserID       uint       `json:"user_id"`
	Provider     string     `json:"provider"`
	ConnectedAt  *time.Time `json:"connected_at"`
	LastSyncedAt *time.Time `json:"last_synced_at"`
}

type WearableService struct {
	tokens     WearableTokenReader
	summaries  WearableSummaryStatusReader
	healthSync HealthSyncLatestReader
}

func NewWearableService(tokens WearableTokenReader, summaries WearableSummaryStatusReader, healthSync HealthSyncLatestReader) *WearableService {
	return &WearableService{tokens: tokens, summaries: summaries, healthSync: healthSync}
}

// ParseWearableRange reads "Nd" and clamps N to 1..MaxAggregationRangeDays.
// Anything unreadable means the default week.
func ParseWearableRange(raw string) int {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	if !strings.HasSuffix(trimmed, "d") {
		return DefaultWearableRangeDays
	}
	days, err := strconv.Atoi(strings.TrimSuffix(trimmed, "d"))
	if err != nil {
		return DefaultWearableRangeDays
	}
	return min(max(days, 1), MaxAggregationRangeDays)
}

// Summary averages the stored daily summaries for the last days calendar
// days. Without any stored day it converts the latest health-sync record, and
// returns nil when neither source has data.
func (service *WearableService) Summary(ctx context.Context, userID uint, days int, now time.Time, location *time.Location) (*WearableSummary, error) {
	days = min(max(days, 1), MaxAggregationRangeDays)
	start, end := WindowRange(now, days, location)

	rows, err := service.summaries.ListByUserDayRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if summary, ok := summarizeWearableRows(rows); ok {
		return &summary, nil
	}

	record, found, err := service.healthSync.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	summary := WearableSummary{
		AvgSteps:        record.AvgSteps,
		AvgSleepMinutes: int(record.AvgSleepHours * 60),
		CountDays:       days,
	}
	if record.RestingHeartRate != nil {
		rate := float64(*record.RestingHeartRate)
		summary.AvgRestingHeartRate = &rate
	}
	return &summary, nil
}

func summarizeWearableRows(rows []models.WearableDailySummary) (WearableSummary, bool) {
	averages := AverageWearable(rows)
	if averages.Days == 0 {
		return WearableSummary{}, false
	}

	summary := WearableSummary{
		AvgSteps:          int(averages.Steps),
		AvgSleepMinutes:   int(averages.SleepHours * 60),
		AvgActiveMinutes:  int(averages.ActiveMinutes),
		AvgCaloriesBurned: averages.CaloriesBurned,
		CountDays:         averages.Days,
	}
	for _, row := range rows {
		if row.RestingHeartRate != nil {
			rate := averages.RestingHeartRate
			summary.AvgRestingHeartRate = &rate
			break
		}
	}
	return summary, true
}

// Status prefers the sync stamp stored on the token and falls back to the
// newest stored summary.
func (service *WearableService) Status(ctx context.Context, userID uint) (WearableStatus, error) {
	token, found, err := service.tokens.FindByUser(ctx, userID)
	if err != nil {
		return WearableStatus{}, err
	}
	if !found {
		return WearableStatus{UserID: userID, Provider: wearableProviderNone}, nil
	}

	status := WearableStatus{
		UserID:       userID,
		Provider:     token.Provider,
		ConnectedAt:  token.ConnectedAt,
		LastSyncedAt: token.LastSyncedAt,
	}
	if strings.TrimSpace(status.Provider) == "" {
		status.Provider = "generic"
	}
	if status.LastSyncedAt == nil {
		latest, err := service.summaries.LatestCreatedAt(ctx, userID)
		if err != nil {
			return WearableStatus{}, err
		}
		status.LastSyncedAt = latest
	}
	return status, nil
}
