// Package notification provides the domain model for admin notifications.
package notification

import (
	"fmt"
	"time"
)

// NotificationType represents the source category of a notification
type NotificationType string

const (
	TypeAdoption NotificationType = "adoption"
	TypeRescue   NotificationType = "rescue"
	TypeDonation NotificationType = "donation"
	TypeActivity NotificationType = "activity"
	TypeSystem   NotificationType = "system"
)

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case TypeAdoption, TypeRescue, TypeDonation, TypeActivity, TypeSystem:
		return true
	}
	return false
}

// String returns the string representation of the type
func (t NotificationType) String() string {
	return string(t)
}

// Notification represents a single admin notification.
type Notification struct {
	id               uint
	notificationType NotificationType
	title            string
	content          string
	targetID         *uint
	targetType       *string
	isRead           bool
	createdAt        time.Time
	updatedAt        time.Time
	version          int
}

// NewNotification creates a new unread notification
func NewNotification(notificationType NotificationType, title, content string, targetID *uint, targetType *string) (*Notification, error) {
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}
	if content == "" {
		return nil, fmt.Errorf("notification content is required")
	}

	now := time.Now()
	return &Notification{
		notificationType: notificationType,
		title:            title,
		content:          content,
		targetID:         targetID,
		targetType:       targetType,
		createdAt:        now,
		updatedAt:        now,
		version:          1,
	}, nil
}

// ReconstructNotification reconstructs a notification from persistence
func ReconstructNotification(
	id uint,
	notificationType NotificationType,
	title, content string,
	targetID *uint,
	targetType *string,
	isRead bool,
	createdAt, updatedAt time.Time,
	version int,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type: %s", notificationType)
	}

	return &Notification{
		id:               id,
		notificationType: notificationType,
		title:            title,
		content:          content,
		targetID:         targetID,
		targetType:       targetType,
		isRead:           isRead,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
	}, nil
}

func (n *Notification) ID() uint               { return n.id }
func (n *Notification) Type() NotificationType { return n.notificationType }
func (n *Notification) Title() string          { return n.title }
func (n *Notification) Content() string        { return n.content }
func (n *Notification) TargetID() *uint        { return n.targetID }
func (n *Notification) TargetType() *string    { return n.targetType }
func (n *Notification) IsRead() bool           { return n.isRead }
func (n *Notification) CreatedAt() time.Time   { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time   { return n.updatedAt }

// Version returns the aggregate version for optimistic locking
func (n *Notification) Version() int { return n.version }

// SetID sets the notification ID (only for persistence layer use)
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	Type       *NotificationType
	Title      *string
	Content    *string
	TargetID   *uint
	TargetType *string
	IsRead     *bool
}

// Update applies a partial update to the notification
func (n *Notification) Update(attrs UpdateAttrs) error {
	if attrs.Type != nil {
		if !attrs.Type.IsValid() {
			return fmt.Errorf("invalid notification type: %s", *attrs.Type)
		}
		n.notificationType = *attrs.Type
	}
	if attrs.Title != nil {
		if *attrs.Title == "" {
			return fmt.Errorf("notification title cannot be empty")
		}
		n.title = *attrs.Title
	}
	if attrs.Content != nil {
		if *attrs.Content == "" {
			return fmt.Errorf("notification content cannot be empty")
		}
		n.content = *attrs.Content
	}
	if attrs.TargetID != nil {
		n.targetID = attrs.TargetID
	}
	if attrs.TargetType != nil {
		n.targetType = attrs.TargetType
	}
	if attrs.IsRead != nil {
		n.isRead = *attrs.IsRead
	}

	n.updatedAt = time.Now()
	n.version++
	return nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.isRead {
		return
	}
	n.isRead = true
	n.updatedAt = time.Now()
	n.version++
}

// IncrementVersion increments the version for optimistic locking
func (n *Notification) IncrementVersion() {
	n.version++
}
