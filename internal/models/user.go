package models

import "time"

type User struct {
	ID              uint   `gorm:"primaryKey"`
	Email           string `gorm:"uniqueIndex;not null"`
	DisplayName     string `gorm:"not null;default:''"`
	WeightKg        *float64
	HeightCm        *float64
	CaloriesGoal    *float64
	ProteinGoal     *float64
	WorkoutsPerWeek *float64
	FamilyHistory   *string
	SleepQuality    *string
	StressLevel     *string
	CreatedAt       time.Time `gorm:"not null"`
}
