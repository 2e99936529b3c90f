package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// PetModel represents the database persistence model for pets.
type PetModel struct {
	ID             uint   `gorm:"primarykey"`
	Name           string `gorm:"not null;size:100;index:idx_pets_name"`
	Type           string `gorm:"not null;size:20;index:idx_pets_type"`
	Breed          string `gorm:"not null;size:100"`
	Age            int    `gorm:"not null"`
	Gender         string `gorm:"not null;size:10"`
	Weight         *float64
	Color          *string        `gorm:"size:50"`
	HealthStatus   string         `gorm:"not null;default:healthy;size:20;index:idx_pets_health_status"`
	AdoptionStatus string         `gorm:"not null;default:available;size:20;index:idx_pets_adoption_status"`
	Description    *string        `gorm:"type:text"`
	Images         datatypes.JSON `gorm:"type:json"`
	Location       *string        `gorm:"size:200"`
	RescueDate     *time.Time
	Rescuer        *string        `gorm:"size:100"`
	Tags           datatypes.JSON `gorm:"type:json"`
	ViewCount      int            `gorm:"not null;default:0"`
	FavoriteCount  int            `gorm:"not null;default:0"`
	AdoptedBy      *string        `gorm:"size:100"`
	AdoptedDate    *time.Time
	CreatedAt      time.Time `gorm:"index:idx_pets_created_at"`
	UpdatedAt      time.Time
	Version        int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (PetModel) TableName() string {
	return constants.TablePets
}

// BeforeCreate hook for GORM.
func (m *PetModel) BeforeCreate(tx *gorm.DB) error {
	if m.HealthStatus == "" {
		m.HealthStatus = "healthy"
	}
	if m.AdoptionStatus == "" {
		m.AdoptionStatus = "available"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
