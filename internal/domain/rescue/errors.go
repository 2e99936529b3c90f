package rescue

import "errors"

var (
	// ErrRescueNotFound indicates the rescue record was not found
	ErrRescueNotFound = errors.New("rescue record not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: rescue record was modified")
)
