package user

import "context"

// Repository defines the interface for user persistence operations
type Repository interface {
	// Create creates a new user
	Create(ctx context.Context, u *User) error

	// Update updates an existing user with optimistic locking
	Update(ctx context.Context, u *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetByUsername retrieves a user by username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername checks if a user with the given username exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// List retrieves users with optional filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)

	// CountByStatus counts users with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// CountByRole counts users with the given role
	CountByRole(ctx context.Context, role Role) (int64, error)

	// Count counts all users
	Count(ctx context.Context) (int64, error)
}

// ListFilter defines the filter options for listing users
type ListFilter struct {
	Search string
	Role   *Role
	Page   int
	Limit  int
}
