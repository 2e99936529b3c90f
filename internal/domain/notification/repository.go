package notification

import "context"

// Repository defines the interface for notification persistence operations
type Repository interface {
	// Create creates a new notification
	Create(ctx context.Context, n *Notification) error

	// Update updates an existing notification with optimistic locking
	Update(ctx context.Context, n *Notification) error

	// Delete deletes a notification by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a notification by ID
	GetByID(ctx context.Context, id uint) (*Notification, error)

	// List retrieves notifications with optional filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*Notification, int64, error)

	// CountUnread counts unread notifications
	CountUnread(ctx context.Context) (int64, error)

	// MarkAllRead marks every unread notification as read and returns
	// the number of rows updated
	MarkAllRead(ctx context.Context) (int64, error)
}

// ListFilter defines the filter options for listing notifications
type ListFilter struct {
	Type       *NotificationType
	UnreadOnly bool
	Page       int
	Limit      int
}
