package activity

import "context"

// Repository defines the interface for activity persistence operations
type Repository interface {
	// Create creates a new activity
	Create(ctx context.Context, a *Activity) error

	// Update updates an existing activity with optimistic locking
	Update(ctx context.Context, a *Activity) error

	// Delete deletes an activity by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves an activity by ID
	GetByID(ctx context.Context, id uint) (*Activity, error)

	// List retrieves activities with optional filters, latest start date first
	List(ctx context.Context, filter ListFilter) ([]*Activity, int64, error)

	// IncrementParticipantCount atomically increments the participant counter
	IncrementParticipantCount(ctx context.Context, id uint) error

	// DecrementParticipantCount atomically decrements the participant
	// counter, never going below zero
	DecrementParticipantCount(ctx context.Context, id uint) error

	// CountByStatus counts activities with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// Count counts all activities
	Count(ctx context.Context) (int64, error)
}

// ListFilter defines the filter options for listing activities
type ListFilter struct {
	Type     *ActivityType
	Status   *Status
	Title    string
	Location string
	Page     int
	Limit    int
}
