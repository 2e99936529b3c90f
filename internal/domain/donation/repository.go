package donation

import "context"

// Repository defines the interface for donation persistence operations
type Repository interface {
	// Create creates a new donation
	Create(ctx context.Context, d *Donation) error

	// Update updates an existing donation with optimistic locking
	Update(ctx context.Context, d *Donation) error

	// Delete deletes a donation by ID
	Delete(ctx context.Context, id uint) error

	// GetByID retrieves a donation by ID
	GetByID(ctx context.Context, id uint) (*Donation, error)

	// List retrieves donations with optional filters, newest first
	List(ctx context.Context, filter ListFilter) ([]*Donation, int64, error)

	// CountByStatus counts donations with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// Count counts all donations
	Count(ctx context.Context) (int64, error)

	// SumConfirmedAmount returns the total amount across confirmed donations
	SumConfirmedAmount(ctx context.Context) (float64, error)
}

// ListFilter defines the filter options for listing donations
type ListFilter struct {
	Status       *Status
	DonorName    string
	DonationType *DonationType
	DonorType    *DonorType
	Page         int
	Limit        int
}
