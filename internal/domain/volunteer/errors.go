package volunteer

import "errors"

var (
	// ErrVolunteerNotFound indicates the volunteer was not found
	ErrVolunteerNotFound = errors.New("volunteer not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: volunteer was modified")
)
