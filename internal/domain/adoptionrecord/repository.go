package adoptionrecord

import (
	"context"
	"time"
)

// Repository defines the interface for adoption record persistence operations
type Repository interface {
	// Create creates a new adoption record
	Create(ctx context.Context, r *Record) error

	// Update updates an existing record with optimistic locking
	Update(ctx context.Context, r *Record) error

	// Delete deletes a record by ID
	Delete(ctx context.Context, id string) error

	// GetByID retrieves a record by UUID
	GetByID(ctx context.Context, id string) (*Record, error)

	// List retrieves records with optional filters, newest adoptions first
	List(ctx context.Context, filter ListFilter) ([]*Record, int64, error)

	// CountByStatus counts records with the given status
	CountByStatus(ctx context.Context, status Status) (int64, error)

	// CountPendingFollowUp counts active records whose next follow-up
	// date has passed
	CountPendingFollowUp(ctx context.Context, before time.Time) (int64, error)

	// Count counts all records
	Count(ctx context.Context) (int64, error)

	// MaxRecordSequence returns the highest record-number sequence issued
	// for the given year prefix, zero when none exist
	MaxRecordSequence(ctx context.Context, prefix string) (int, error)
}

// ListFilter defines the filter options for listing adoption records
type ListFilter struct {
	Status       *Status
	PetName      string
	AdopterName  string
	RecordNumber string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	Limit        int
}
