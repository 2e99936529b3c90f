package pet

import "context"

// Repository defines the interface for pet persistence operations
type Repository interface {
	// Create creates a new pet
	Create(ctx context.Context, p *Pet) error

	// Update updates an existing pet with optimistic locking
	Update(ctx context.Context, p *Pet) error

	// Delete deletes a pet by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a pet by ID
	GetByID(ctx context.Context, id uint) (*Pet, error)

	// List retrieves pets with optional filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*Pet, int64, error)

	// IncrementViewCount atomically increments the view counter
	IncrementViewCount(ctx context.Context, id uint) error

	// IncrementFavoriteCount atomically increments the favorite counter
	IncrementFavoriteCount(ctx context.Context, id uint) error

	// DecrementFavoriteCount atomically decrements the favorite counter,
	// never going below zero
	DecrementFavoriteCount(ctx context.Context, id uint) error

	// CountByAdoptionStatus counts pets with the given adoption status
	CountByAdoptionStatus(ctx context.Context, status AdoptionStatus) (int64, error)

	// CountByHealthStatus counts pets with the given health status
	CountByHealthStatus(ctx context.Context, status HealthStatus) (int64, error)

	// Count counts all pets
	Count(ctx context.Context) (int64, error)

	// CountGroupByType returns pet counts grouped by type
	CountGroupByType(ctx context.Context) (map[PetType]int64, error)
}

// ListFilter defines the filter options for listing pets
type ListFilter struct {
	Type           *PetType
	Gender         *Gender
	HealthStatus   *HealthStatus
	AdoptionStatus *AdoptionStatus
	Location       string
	Page           int
	Limit          int
}
