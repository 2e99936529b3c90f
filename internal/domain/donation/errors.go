package donation

import "errors"

var (
	// ErrDonationNotFound indicates the donation was not found
	ErrDonationNotFound = errors.New("donation not found")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: donation was modified")
)
