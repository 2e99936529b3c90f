package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// DonationModel represents the database persistence model for donations.
type DonationModel struct {
	ID            uint           `gorm:"primarykey"`
	DonorName     string         `gorm:"not null;size:100;index:idx_donations_donor_name"`
	DonorType     string         `gorm:"not null;size:20;index:idx_donations_donor_type"`
	Amount        float64        `gorm:"not null;default:0"`
	DonationDate  time.Time      `gorm:"not null;index:idx_donations_donation_date"`
	DonationType  string         `gorm:"not null;size:20;index:idx_donations_donation_type"`
	Purpose       *string        `gorm:"size:200"`
	Status        string         `gorm:"not null;default:pending;size:20;index:idx_donations_status"`
	PaymentMethod *string        `gorm:"size:50"`
	TransactionID *string        `gorm:"size:100"`
	Remarks       *string        `gorm:"size:500"`
	ReceiptIssued bool           `gorm:"not null;default:false"`
	Items         datatypes.JSON `gorm:"type:json"`
	TotalValue    *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Version       int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (DonationModel) TableName() string {
	return constants.TableDonations
}

// BeforeCreate hook for GORM.
func (m *DonationModel) BeforeCreate(tx *gorm.DB) error {
	if m.Status == "" {
		m.Status = "pending"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
