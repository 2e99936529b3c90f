package user

import "errors"

var (
	// ErrUserNotFound indicates the user was not found
	ErrUserNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates the username is already registered
	ErrUsernameTaken = errors.New("username already exists")

	// ErrVersionConflict indicates an optimistic locking conflict
	ErrVersionConflict = errors.New("version conflict: user was modified")
)
