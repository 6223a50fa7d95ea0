package models

import (
	"time"

	"gorm.io/datatypes"
)

type Plan struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	UserInputs      datatypes.JSON `gorm:"column:user_inputs" json:"user_inputs"`
	ClassifierLabel string         `gorm:"not null;default:''" json:"classifier_label"`
	PlanText        string         `gorm:"not null;default:''" json:"plan_text"`
	CreatedAt       time.Time      `gorm:"not null;index" json:"created_at"`
}
