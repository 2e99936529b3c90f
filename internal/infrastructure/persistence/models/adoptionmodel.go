package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// AdoptionModel represents the database persistence model for adoption applications.
type AdoptionModel struct {
	ID               uint      `gorm:"primarykey"`
	PetID            uint      `gorm:"not null;index:idx_adoptions_pet_id"`
	PetName          string    `gorm:"not null;size:100"`
	ApplicantName    string    `gorm:"not null;size:100;index:idx_adoptions_applicant_name"`
	ApplicantPhone   string    `gorm:"not null;size:30"`
	ApplicantEmail   string    `gorm:"size:100"`
	ApplicantIDCard  string    `gorm:"size:30"`
	ApplicantAddress string    `gorm:"size:300"`
	ApplicationDate  time.Time `gorm:"not null;index:idx_adoptions_application_date"`
	Status           string    `gorm:"not null;default:pending;size:20;index:idx_adoptions_status"`
	ApprovalDate     *time.Time
	Approver         *string `gorm:"size:100"`
	RejectionDate    *time.Time
	Rejecter         *string `gorm:"size:100"`
	RejectReason     *string `gorm:"size:500"`
	Remarks          *string `gorm:"size:500"`
	Experience       *string `gorm:"type:text"`
	HousingType      *string `gorm:"size:50"`
	HasYard          bool    `gorm:"not null;default:false"`
	FamilyMembers    *int
	WorkHours        *string        `gorm:"size:100"`
	ReviewNotes      datatypes.JSON `gorm:"type:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Version          int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (AdoptionModel) TableName() string {
	return constants.TableAdoptions
}

// BeforeCreate hook for GORM.
func (m *AdoptionModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "pending"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
