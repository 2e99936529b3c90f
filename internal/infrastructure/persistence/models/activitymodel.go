package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// ActivityModel represents the database persistence model for shelter activities.
type ActivityModel struct {
	ID               uint      `gorm:"primarykey"`
	Title            string    `gorm:"not null;size:200;index:idx_activities_title"`
	Type             string    `gorm:"not null;size:20;index:idx_activities_type"`
	StartDate        time.Time `gorm:"not null;index:idx_activities_start_date"`
	EndDate          time.Time `gorm:"not null"`
	Location         string    `gorm:"not null;size:200"`
	Description      string    `gorm:"type:text"`
	ParticipantLimit *int
	ParticipantCount int            `gorm:"not null;default:0"`
	Status           string         `gorm:"not null;default:upcoming;size:20;index:idx_activities_status"`
	Organizer        string         `gorm:"not null;size:100"`
	Requirements     *string        `gorm:"type:text"`
	Images           datatypes.JSON `gorm:"type:json"`
	Tags             datatypes.JSON `gorm:"type:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (ActivityModel) TableName() string {
	return constants.TableActivities
}

// BeforeCreate hook for GORM.
func (m *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "upcoming"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
