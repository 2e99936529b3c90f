package volunteer

import "context"

// Repository defines the interface for volunteer persistence operations
type Repository interface {
	// Create creates a new volunteer
	Create(ctx context.Context, v *Volunteer) error

	// Update updates an existing volunteer with optimistic locking
	Update(ctx context.Context, v *Volunteer) error

	// Delete deletes a volunteer by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a volunteer by ID
	GetByID(ctx context.Context, id uint) (*Volunteer, error)

	// List retrieves volunteers with optional filters, newest joiners first
	List(ctx context.Context, filter ListFilter) ([]*Volunteer, int64, error)

	// AddHours atomically adds the given hours to the volunteer's total
	// and increments the participated-activities counter
	AddHours(ctx context.Context, id uint, hours float64) error

	// CountByStatus counts volunteers with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// Count counts all volunteers
	Count(ctx context.Context) (int64, error)

	// SumTotalHours returns the total service hours across all volunteers
	SumTotalHours(ctx context.Context) (float64, error)
}

// ListFilter defines the filter options for listing volunteers
type ListFilter struct {
	Status *Status
	Name   string
	Skills string
	Page   int
	Limit  int
}
