package rescue

import "context"

// Repository defines the interface for rescue persistence operations
type Repository interface {
	// Create creates a new rescue record
	Create(ctx context.Context, r *Rescue) error

	// Update updates an existing rescue record with optimistic locking
	Update(ctx context.Context, r *Rescue) error

	// Delete deletes a rescue record by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a rescue record by ID
	GetByID(ctx context.Context, id uint) (*Rescue, error)

	// List retrieves rescue records with optional filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*Rescue, int64, error)

	// CountByHealthCondition counts rescues with the given health condition
	CountByHealthCondition(ctx context.Context, condition string) (int64, error)

	// Count counts all rescue records
	Count(ctx context.Context) (int64, error)

	// SumCost returns the total cost across all rescues
	SumCost(ctx context.Context) (float64, error)
}

// ListFilter defines the filter options for listing rescues
type ListFilter struct {
	Rescuer         string
	RescueType      *string
	HealthCondition *string
	RescueLocation  string
	Page            int
	Limit           int
}
