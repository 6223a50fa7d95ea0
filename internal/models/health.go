package models

import "time"

const (
	SyncSourcePhoneApp   = "phone_app"
	SyncSourceSmartwatch = "smartwatch"
	SyncSourceManual     = "manual"
)

type HealthProfile struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Age             int       `gorm:"not null" json:"age"`
	Gender          string    `gorm:"not null" json:"gender"`
	Height          float64   `gorm:"not null" json:"height"`
	Weight          float64   `gorm:"not null" json:"weight"`
	BMI             float64   `gorm:"column:bmi;not null" json:"bmi"`
	ActivityLevel   string    `gorm:"not null" json:"activity_level"`
	FamilyHistory   string    `gorm:"not null" json:"family_history"`
	SugarIntake     string    `gorm:"not null" json:"sugar_intake"`
	SleepHours      float64   `gorm:"not null" json:"sleep_hours"`
	StressLevel     string    `gorm:"not null" json:"stress_level"`
	WorkoutsPerWeek *int      `json:"workouts_per_week,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// HealthSyncRecord rows are append-only.
type HealthSyncRecord struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	PublicID         string    `gorm:"not null;uniqueIndex" json:"id"`
	UserID           uint      `gorm:"not null;index:idx_health_sync_user_synced" json:"user_id"`
	AvgSteps         int       `gorm:"not null" json:"avg_steps"`
	AvgSleepHours    float64   `gorm:"not null" json:"avg_sleep_hours"`
	RestingHeartRate *int      `json:"resting_heart_rate"`
	Source           string    `gorm:"not null" json:"source"`
	ConfidenceScore  float64   `gorm:"not null" json:"confidence_score"`
	SyncedAt         time.Time `gorm:"not null;index:idx_health_sync_user_synced" json:"synced_at"`
	CreatedAt        time.Time `json:"created_at"`
}
