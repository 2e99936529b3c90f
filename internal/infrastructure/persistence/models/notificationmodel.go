package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// NotificationModel represents the database persistence model for notifications.
type NotificationModel struct {
	ID         uint   `gorm:"primarykey"`
	Type       string `gorm:"not null;size:20;index:idx_notifications_type"`
	Title      string `gorm:"not null;size:200"`
	Content    string `gorm:"type:text"`
	TargetID   *uint
	TargetType *string   `gorm:"size:50"`
	IsRead     bool      `gorm:"not null;default:false;index:idx_notifications_is_read"`
	CreatedAt  time.Time `gorm:"index:idx_notifications_created_at"`
	UpdatedAt  time.Time
	Version    int `gorm:"not null;default:1"`
}

// TableName specifies the table name for GORM.
func (NotificationModel) TableName() string {
	return constants.TableNotifications
}

// BeforeCreate hook for GORM.
func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
