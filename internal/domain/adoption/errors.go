package adoption

import "errors"

var (
	// ErrAdoptionNotFound indicates the adoption application was not found
	ErrAdoptionNotFound = errors.New("adoption application not found")

	// ErrNotPending indicates the application already left the pending state
	ErrNotPending = errors.New("adoption application is not pending")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: adoption application was modified")
)
