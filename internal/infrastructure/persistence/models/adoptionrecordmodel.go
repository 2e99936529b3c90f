package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// AdoptionRecordModel represents the database persistence model for adoption records.
type AdoptionRecordModel struct {
	ID                    string         `gorm:"primarykey;size:36"`
	AdoptionApplicationID *uint          `gorm:"index:idx_adoption_records_application_id"`
	RecordNumber          string         `gorm:"not null;size:20;uniqueIndex:idx_adoption_records_number"`
	PetID                 uint           `gorm:"not null;index:idx_adoption_records_pet_id"`
	PetName               string         `gorm:"not null;size:100"`
	PetBreed              *string        `gorm:"size:100"`
	PetImage              *string        `gorm:"size:500"`
	AdopterID             uint           `gorm:"not null;index:idx_adoption_records_adopter_id"`
	AdopterName           string         `gorm:"not null;size:100;index:idx_adoption_records_adopter_name"`
	AdopterPhone          *string        `gorm:"size:30"`
	AdopterEmail          *string        `gorm:"size:100"`
	AdopterAddress        *string        `gorm:"size:300"`
	AdoptionDate          time.Time      `gorm:"not null;index:idx_adoption_records_adoption_date"`
	AgreementNumber       *string        `gorm:"size:50"`
	Status                string         `gorm:"not null;default:active;size:20;index:idx_adoption_records_status"`
	FollowUps             datatypes.JSON `gorm:"type:json"`
	LastFollowUpDate      *time.Time
	NextFollowUpDate      *time.Time `gorm:"index:idx_adoption_records_next_follow_up"`
	Remarks               *string    `gorm:"size:500"`
	CreatedBy             *string    `gorm:"size:100"`
	UpdatedBy             *string    `gorm:"size:100"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
	Version               int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (AdoptionRecordModel) TableName() string {
	return constants.TableAdoptionRecords
}

// BeforeCreate hook for GORM.
func (m *AdoptionRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "active"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
