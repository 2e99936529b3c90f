package adoption

import "context"

// Repository defines the interface for adoption application persistence operations
type Repository interface {
	// Create creates a new adoption application
	Create(ctx context.Context, a *Adoption) error

	// Update updates an existing application with optimistic locking
	Update(ctx context.Context, a *Adoption) error

	// Delete deletes an application by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves an application by ID
	GetByID(ctx context.Context, id uint) (*Adoption, error)

	// List retrieves applications with optional filters, newest applications first
	List(ctx context.Context, filter ListFilter) ([]*Adoption, int64, error)

	// ListRecent retrieves the latest applications by application date
	ListRecent(ctx context.Context, limit int) ([]*Adoption, error)

	// CountByStatus counts applications with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// Count counts all applications
	Count(ctx context.Context) (int64, error)
}

// ListFilter defines the filter options for listing adoption applications
type ListFilter struct {
	Status        *Status
	ApplicantName string
	PetName       string
	Page          int
	Limit         int
}
