package adoptionrecord

import "errors"

var (
	// ErrRecordNotFound indicates the adoption record was not found
	ErrRecordNotFound = errors.New("adoption record not found")

	// ErrRecordNumberTaken indicates the generated record number collided
	// with an existing one
	ErrRecordNumberTaken = errors.New("record number already exists")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: adoption record was modified")
)
