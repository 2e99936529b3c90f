package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// VolunteerModel represents the database persistence model for volunteers.
type VolunteerModel struct {
	ID                     uint   `gorm:"primarykey"`
	Name                   string `gorm:"not null;size:100;index:idx_volunteers_name"`
	Phone                  string `gorm:"not null;size:30"`
	Email                  string `gorm:"not null;size:100"`
	Age                    *int
	Occupation             *string   `gorm:"size:100"`
	Experience             *string   `gorm:"type:text"`
	AvailableTime          *string   `gorm:"size:200"`
	Status                 string    `gorm:"not null;default:active;size:20;index:idx_volunteers_status"`
	JoinDate               time.Time `gorm:"not null;index:idx_volunteers_join_date"`
	ActivitiesParticipated int       `gorm:"not null;default:0"`
	TotalHours             float64   `gorm:"not null;default:0"`
	Skills                 datatypes.JSON `gorm:"type:json"`
	Avatar                 *string        `gorm:"size:500"`
	Address                *string        `gorm:"size:300"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Version                int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (VolunteerModel) TableName() string {
	return constants.TableVolunteers
}

// BeforeCreate hook for GORM.
func (m *VolunteerModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
