package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// RescueModel represents the database persistence model for rescue operations.
type RescueModel struct {
	ID              uint           `gorm:"primarykey"`
	PetID           uint           `gorm:"not null;index:idx_rescues_pet_id"`
	PetName         string         `gorm:"not null;size:100"`
	RescueDate      time.Time      `gorm:"not null;index:idx_rescues_rescue_date"`
	RescueLocation  string         `gorm:"not null;size:200;index:idx_rescues_location"`
	Rescuer         string         `gorm:"not null;size:100;index:idx_rescues_rescuer"`
	RescueType      string         `gorm:"size:50"`
	Description     string         `gorm:"type:text"`
	HealthCondition string         `gorm:"size:50;index:idx_rescues_health_condition"`
	ImmediateAction string         `gorm:"type:text"`
	Images          datatypes.JSON `gorm:"type:json"`
	VideoURL        *string        `gorm:"size:500"`
	Cost            *float64
	Notes           *string `gorm:"size:500"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (RescueModel) TableName() string {
	return constants.TableRescues
}

// BeforeCreate hook for GORM.
func (m *RescueModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
