package activity

import "errors"

var (
	// ErrActivityNotFound indicates the activity was not found
	ErrActivityNotFound = errors.New("activity not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: activity was modified")
)
