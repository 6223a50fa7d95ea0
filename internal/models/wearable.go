package models

import "time"

const WearableSourceDevice = "wearable"

// WearableDailySummary keeps Date as a plain YYYY-MM-DD string; callers
// convert it to a calendar day before aggregating.
type WearableDailySummary struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:uidx_wearable_user_date" json:"user_id"`
	Date             string    `gorm:"not null;uniqueIndex:uidx_wearable_user_date" json:"date"`
	Steps            int       `gorm:"not null;default:0" json:"steps"`
	SleepMinutes     int       `gorm:"not null;default:0" json:"sleep_minutes"`
	RestingHeartRate *float64  `json:"resting_heart_rate"`
	ActiveMinutes    int       `gorm:"not null;default:0" json:"active_minutes"`
	CaloriesBurned   *float64  `json:"calories_burned"`
	Source           string    `gorm:"not null;default:wearable" json:"source"`
	CreatedAt        time.Time `json:"created_at"`
}

type WearableToken struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;uniqueIndex"`
	Provider     string `gorm:"not null;default:generic"`
	AccessToken  string `gorm:"not null"`
	RefreshToken string
	Scope        string
	ExpiresAt    *time.Time
	ConnectedAt  *time.Time
	LastSyncedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
