package notification

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/notification"
)

// CreateNotificationRequest represents a new notification
type CreateNotificationRequest struct {
	Type       string  `json:"type" binding:"required,oneof=adoption rescue donation activity system"`
	Title      string  `json:"title" binding:"required,min=1,max=200"`
	Content    string  `json:"content" binding:"required,min=1"`
	TargetID   *uint   `json:"targetId,omitempty"`
	TargetType *string `json:"targetType,omitempty" binding:"omitempty,max=50"`
}

// UpdateNotificationRequest represents a partial update to a notification
type UpdateNotificationRequest struct {
	Type       *string `json:"type,omitempty" binding:"omitempty,oneof=adoption rescue donation activity system"`
	Title      *string `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Content    *string `json:"content,omitempty" binding:"omitempty,min=1"`
	TargetID   *uint   `json:"targetId,omitempty"`
	TargetType *string `json:"targetType,omitempty" binding:"omitempty,max=50"`
	IsRead     *bool   `json:"isRead,omitempty"`
}

// ListNotificationsQuery carries the list filters parsed from the query string
type ListNotificationsQuery struct {
	Type       string
	UnreadOnly bool
	Page       int
	Limit      int
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID         uint      `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	TargetID   *uint     `json:"targetId,omitempty"`
	TargetType *string   `json:"targetType,omitempty"`
	IsRead     bool      `json:"isRead"`
	CreateTime time.Time `json:"createTime"`
	UpdateTime time.Time `json:"updateTime"`
}

// UnreadCountResponse represents the unread notification count
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// MarkAllReadResponse reports how many notifications were marked read
type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func toNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:         n.ID(),
		Type:       n.Type().String(),
		Title:      n.Title(),
		Content:    n.Content(),
		TargetID:   n.TargetID(),
		TargetType: n.TargetType(),
		IsRead:     n.IsRead(),
		CreateTime: n.CreatedAt(),
		UpdateTime: n.UpdatedAt(),
	}
}

func toNotificationResponses(items []*notification.Notification) []*NotificationResponse {
	out := make([]*NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, toNotificationResponse(n))
	}
	return out
}
