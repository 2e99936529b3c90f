package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// UserModel represents the database persistence model for admin accounts.
type UserModel struct {
	ID        uint    `gorm:"primarykey"`
	Username  string  `gorm:"not null;size:50;uniqueIndex:idx_users_username"`
	Password  string  `gorm:"not null;size:100"`
	RealName  string  `gorm:"not null;size:100"`
	Role      string  `gorm:"not null;default:staff;size:20;index:idx_users_role"`
	Avatar    *string `gorm:"size:500"`
	Phone     *string `gorm:"size:30"`
	Email     *string `gorm:"size:100"`
	Status    string  `gorm:"not null;default:active;size:20;index:idx_users_status"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (UserModel) TableName() string {
	return constants.TableUsers
}

// BeforeCreate hook for GORM.
func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.Role == "" {
		m.Role = "staff"
	}
	if m.Status == "" {
		m.Status = "active"
	}
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
