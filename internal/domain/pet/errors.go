package pet

import "errors"

var (
	// ErrPetNotFound indicates the pet was not found
	ErrPetNotFound = errors.New("pet not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: pet was modified")
)
