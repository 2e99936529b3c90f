package notification

import "errors"

var (
	// ErrNotificationNotFound indicates the notification was not found
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: notification was modified")
)
