// Package rescue provides the domain model for animal rescue operations.
package rescue

import (
	"fmt"
	"time"
)

// Rescue represents a single rescue operation record.
type Rescue struct {
	id              uint
	petID           uint
	petName         string
	rescueDate      time.Time
	rescueLocation  string
	rescuer         string
	rescueType      string
	description     string
	healthCondition string
	immediateAction string
	images          []string
	videoURL        *string
	cost            *float64
	notes           *string
	createdAt       time.Time
	updatedAt       time.Time
	version         int
}

// NewRescue creates a new rescue record
func NewRescue(
	petID uint,
	petName string,
	rescueDate time.Time,
	rescueLocation string,
	rescuer string,
	rescueType string,
	description string,
	healthCondition string,
	immediateAction string,
) (*Rescue, error) {
	if petID == 0 {
		return nil, fmt.Errorf("pet ID is required")
	}
	if petName == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if rescueLocation == "" {
		return nil, fmt.Errorf("rescue location is required")
	}
	if rescuer == "" {
		return nil, fmt.Errorf("rescuer is required")
	}
	if rescueDate.IsZero() {
		rescueDate = time.Now()
	}

	now := time.Now()
	return &Rescue{
		petID:           petID,
		petName:         petName,
		rescueDate:      rescueDate,
		rescueLocation:  rescueLocation,
		rescuer:         rescuer,
		rescueType:      rescueType,
		description:     description,
		healthCondition: healthCondition,
		immediateAction: immediateAction,
		images:          []string{},
		createdAt:       now,
		updatedAt:       now,
		version:         1,
	}, nil
}

// ReconstructRescue reconstructs a rescue record from persistence
func ReconstructRescue(
	id uint,
	petID uint,
	petName string,
	rescueDate time.Time,
	rescueLocation string,
	rescuer string,
	rescueType string,
	description string,
	healthCondition string,
	immediateAction string,
	images []string,
	videoURL *string,
	cost *float64,
	notes *string,
	createdAt, updatedAt time.Time,
	version int,
) (*Rescue, error) {
	if id == 0 {
		return nil, fmt.Errorf("rescue ID cannot be zero")
	}
	if petID == 0 {
		return nil, fmt.Errorf("pet ID is required")
	}

	if images == nil {
		images = []string{}
	}

	return &Rescue{
		id:              id,
		petID:           petID,
		petName:         petName,
		rescueDate:      rescueDate,
		rescueLocation:  rescueLocation,
		rescuer:         rescuer,
		rescueType:      rescueType,
		description:     description,
		healthCondition: healthCondition,
		immediateAction: immediateAction,
		images:          images,
		videoURL:        videoURL,
		cost:            cost,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
	}, nil
}

func (r *Rescue) ID() uint                { return r.id }
func (r *Rescue) PetID() uint             { return r.petID }
func (r *Rescue) PetName() string         { return r.petName }
func (r *Rescue) RescueDate() time.Time   { return r.rescueDate }
func (r *Rescue) RescueLocation() string  { return r.rescueLocation }
func (r *Rescue) Rescuer() string         { return r.rescuer }
func (r *Rescue) RescueType() string      { return r.rescueType }
func (r *Rescue) Description() string     { return r.description }
func (r *Rescue) HealthCondition() string { return r.healthCondition }
func (r *Rescue) ImmediateAction() string { return r.immediateAction }
func (r *Rescue) Images() []string        { return r.images }
func (r *Rescue) VideoURL() *string       { return r.videoURL }
func (r *Rescue) Cost() *float64          { return r.cost }
func (r *Rescue) Notes() *string          { return r.notes }
func (r *Rescue) CreatedAt() time.Time    { return r.createdAt }
func (r *Rescue) UpdatedAt() time.Time    { return r.updatedAt }

// Version returns the aggregate version for optimistic locking
func (r *Rescue) Version() int { return r.version }

// SetID sets the rescue ID (only for persistence layer use)
func (r *Rescue) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("rescue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("rescue ID cannot be zero")
	}
	r.id = id
	return nil
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	PetName         *string
	RescueDate      *time.Time
	RescueLocation  *string
	Rescuer         *string
	RescueType      *string
	Description     *string
	HealthCondition *string
	ImmediateAction *string
	Images          []string
	VideoURL        *string
	Cost            *float64
	Notes           *string
}

// Update applies a partial update to the rescue record
func (r *Rescue) Update(attrs UpdateAttrs) error {
	if attrs.PetName != nil {
		if *attrs.PetName == "" {
			return fmt.Errorf("pet name cannot be empty")
		}
		r.petName = *attrs.PetName
	}
	if attrs.RescueDate != nil {
		r.rescueDate = *attrs.RescueDate
	}
	if attrs.RescueLocation != nil {
		if *attrs.RescueLocation == "" {
			return fmt.Errorf("rescue location cannot be empty")
		}
		r.rescueLocation = *attrs.RescueLocation
	}
	if attrs.Rescuer != nil {
		r.rescuer = *attrs.Rescuer
	}
	if attrs.RescueType != nil {
		r.rescueType = *attrs.RescueType
	}
	if attrs.Description != nil {
		r.description = *attrs.Description
	}
	if attrs.HealthCondition != nil {
		r.healthCondition = *attrs.HealthCondition
	}
	if attrs.ImmediateAction != nil {
		r.immediateAction = *attrs.ImmediateAction
	}
	if attrs.Images != nil {
		r.images = attrs.Images
	}
	if attrs.VideoURL != nil {
		r.videoURL = attrs.VideoURL
	}
	if attrs.Cost != nil {
		r.cost = attrs.Cost
	}
	if attrs.Notes != nil {
		r.notes = attrs.Notes
	}

	r.updatedAt = time.Now()
	r.version++
	return nil
}

// IncrementVersion increments the version for optimistic locking
func (r *Rescue) IncrementVersion() {
	r.version++
}
