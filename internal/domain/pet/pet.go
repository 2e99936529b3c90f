// Package pet provides the domain model for shelter animals.
package pet

import (
	"fmt"
	"time"
)

// PetType represents the species category of a pet
type PetType string

const (
	PetTypeDog     PetType = "dog"
	PetTypeCat     PetType = "cat"
	PetTypeRabbit  PetType = "rabbit"
	PetTypeBird    PetType = "bird"
	PetTypeHamster PetType = "hamster"
	PetTypeOther   PetType = "other"
)

// IsValid checks if the pet type is valid
func (t PetType) IsValid() bool {
	switch t {
	case PetTypeDog, PetTypeCat, PetTypeRabbit, PetTypeBird, PetTypeHamster, PetTypeOther:
		return true
	}
	return false
}

// String returns the string representation of the type
func (t PetType) String() string {
	return string(t)
}

// Gender represents the sex of a pet
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// IsValid checks if the gender is valid
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// String returns the string representation of the gender
func (g Gender) String() string {
	return string(g)
}

// HealthStatus represents the health condition of a pet
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusTreating  HealthStatus = "treating"
	HealthStatusRecovered HealthStatus = "recovered"
	HealthStatusCritical  HealthStatus = "critical"
)

// IsValid checks if the health status is valid
func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthStatusHealthy, HealthStatusTreating, HealthStatusRecovered, HealthStatusCritical:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s HealthStatus) String() string {
	return string(s)
}

// AdoptionStatus represents the adoption availability of a pet
type AdoptionStatus string

const (
	AdoptionStatusAvailable   AdoptionStatus = "available"
	AdoptionStatusPending     AdoptionStatus = "pending"
	AdoptionStatusAdopted     AdoptionStatus = "adopted"
	AdoptionStatusUnavailable AdoptionStatus = "unavailable"
)

// IsValid checks if the adoption status is valid
func (s AdoptionStatus) IsValid() bool {
	switch s {
	case AdoptionStatusAvailable, AdoptionStatusPending, AdoptionStatusAdopted, AdoptionStatusUnavailable:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s AdoptionStatus) String() string {
	return string(s)
}

// Pet represents the shelter animal aggregate root.
type Pet struct {
	id             uint
	name           string
	petType        PetType
	breed          string
	age            int
	gender         Gender
	weight         *float64
	color          *string
	healthStatus   HealthStatus
	adoptionStatus AdoptionStatus
	description    *string
	images         []string
	location       *string
	rescueDate     *time.Time
	rescuer        *string
	tags           []string
	viewCount      int
	favoriteCount  int
	adoptedBy      *string
	adoptedDate    *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	version        int
}

// NewPet creates a new pet record
func NewPet(name string, petType PetType, breed string, age int, gender Gender) (*Pet, error) {
	if name == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if !petType.IsValid() {
		return nil, fmt.Errorf("invalid pet type: %s", petType)
	}
	if breed == "" {
		return nil, fmt.Errorf("pet breed is required")
	}
	if age < 0 {
		return nil, fmt.Errorf("pet age cannot be negative")
	}
	if !gender.IsValid() {
		return nil, fmt.Errorf("invalid pet gender: %s", gender)
	}

	now := time.Now()
	return &Pet{
		name:           name,
		petType:        petType,
		breed:          breed,
		age:            age,
		gender:         gender,
		healthStatus:   HealthStatusHealthy,
		adoptionStatus: AdoptionStatusAvailable,
		images:         []string{},
		tags:           []string{},
		createdAt:      now,
		updatedAt:      now,
		version:        1,
	}, nil
}

// ReconstructPet reconstructs a pet from persistence
func ReconstructPet(
	id uint,
	name string,
	petType PetType,
	breed string,
	age int,
	gender Gender,
	weight *float64,
	color *string,
	healthStatus HealthStatus,
	adoptionStatus AdoptionStatus,
	description *string,
	images []string,
	location *string,
	rescueDate *time.Time,
	rescuer *string,
	tags []string,
	viewCount int,
	favoriteCount int,
	adoptedBy *string,
	adoptedDate *time.Time,
	createdAt, updatedAt time.Time,
	version int,
) (*Pet, error) {
	if id == 0 {
		return nil, fmt.Errorf("pet ID cannot be zero")
	}
	if !petType.IsValid() {
		return nil, fmt.Errorf("invalid pet type: %s", petType)
	}
	if !healthStatus.IsValid() {
		return nil, fmt.Errorf("invalid health status: %s", healthStatus)
	}
	if !adoptionStatus.IsValid() {
		return nil, fmt.Errorf("invalid adoption status: %s", adoptionStatus)
	}

	if images == nil {
		images = []string{}
	}
	if tags == nil {
		tags = []string{}
	}

	return &Pet{
		id:             id,
		name:           name,
		petType:        petType,
		breed:          breed,
		age:            age,
		gender:         gender,
		weight:         weight,
		color:          color,
		healthStatus:   healthStatus,
		adoptionStatus: adoptionStatus,
		description:    description,
		images:         images,
		location:       location,
		rescueDate:     rescueDate,
		rescuer:        rescuer,
		tags:           tags,
		viewCount:      viewCount,
		favoriteCount:  favoriteCount,
		adoptedBy:      adoptedBy,
		adoptedDate:    adoptedDate,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		version:        version,
	}, nil
}

func (p *Pet) ID() uint                       { return p.id }
func (p *Pet) Name() string                   { return p.name }
func (p *Pet) Type() PetType                  { return p.petType }
func (p *Pet) Breed() string                  { return p.breed }
func (p *Pet) Age() int                       { return p.age }
func (p *Pet) Gender() Gender                 { return p.gender }
func (p *Pet) Weight() *float64               { return p.weight }
func (p *Pet) Color() *string                 { return p.color }
func (p *Pet) HealthStatus() HealthStatus     { return p.healthStatus }
func (p *Pet) AdoptionStatus() AdoptionStatus { return p.adoptionStatus }
func (p *Pet) Description() *string           { return p.description }
func (p *Pet) Images() []string               { return p.images }
func (p *Pet) Location() *string              { return p.location }
func (p *Pet) RescueDate() *time.Time         { return p.rescueDate }
func (p *Pet) Rescuer() *string               { return p.rescuer }
func (p *Pet) Tags() []string                 { return p.tags }
func (p *Pet) ViewCount() int                 { return p.viewCount }
func (p *Pet) FavoriteCount() int             { return p.favoriteCount }
func (p *Pet) AdoptedBy() *string             { return p.adoptedBy }
func (p *Pet) AdoptedDate() *time.Time        { return p.adoptedDate }
func (p *Pet) CreatedAt() time.Time           { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time           { return p.updatedAt }

// Version returns the aggregate version for optimistic locking
func (p *Pet) Version() int { return p.version }

// SetID sets the pet ID (only for persistence layer use)
func (p *Pet) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("pet ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("pet ID cannot be zero")
	}
	p.id = id
	return nil
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	Name           *string
	Type           *PetType
	Breed          *string
	Age            *int
	Gender         *Gender
	Weight         *float64
	Color          *string
	HealthStatus   *HealthStatus
	AdoptionStatus *AdoptionStatus
	Description    *string
	Images         []string
	Location       *string
	RescueDate     *time.Time
	Rescuer        *string
	Tags           []string
	AdoptedBy      *string
	AdoptedDate    *time.Time
}

// Update applies a partial update to the pet
func (p *Pet) Update(attrs UpdateAttrs) error {
	if attrs.Name != nil {
		if *attrs.Name == "" {
			return fmt.Errorf("pet name cannot be empty")
		}
		p.name = *attrs.Name
	}
	if attrs.Type != nil {
		if !attrs.Type.IsValid() {
			return fmt.Errorf("invalid pet type: %s", *attrs.Type)
		}
		p.petType = *attrs.Type
	}
	if attrs.Breed != nil {
		if *attrs.Breed == "" {
			return fmt.Errorf("pet breed cannot be empty")
		}
		p.breed = *attrs.Breed
	}
	if attrs.Age != nil {
		if *attrs.Age < 0 {
			return fmt.Errorf("pet age cannot be negative")
		}
		p.age = *attrs.Age
	}
	if attrs.Gender != nil {
		if !attrs.Gender.IsValid() {
			return fmt.Errorf("invalid pet gender: %s", *attrs.Gender)
		}
		p.gender = *attrs.Gender
	}
	if attrs.Weight != nil {
		p.weight = attrs.Weight
	}
	if attrs.Color != nil {
		p.color = attrs.Color
	}
	if attrs.HealthStatus != nil {
		if !attrs.HealthStatus.IsValid() {
			return fmt.Errorf("invalid health status: %s", *attrs.HealthStatus)
		}
		p.healthStatus = *attrs.HealthStatus
	}
	if attrs.AdoptionStatus != nil {
		if !attrs.AdoptionStatus.IsValid() {
			return fmt.Errorf("invalid adoption status: %s", *attrs.AdoptionStatus)
		}
		p.adoptionStatus = *attrs.AdoptionStatus
	}
	if attrs.Description != nil {
		p.description = attrs.Description
	}
	if attrs.Images != nil {
		p.images = attrs.Images
	}
	if attrs.Location != nil {
		p.location = attrs.Location
	}
	if attrs.RescueDate != nil {
		p.rescueDate = attrs.RescueDate
	}
	if attrs.Rescuer != nil {
		p.rescuer = attrs.Rescuer
	}
	if attrs.Tags != nil {
		p.tags = attrs.Tags
	}
	if attrs.AdoptedBy != nil {
		p.adoptedBy = attrs.AdoptedBy
	}
	if attrs.AdoptedDate != nil {
		p.adoptedDate = attrs.AdoptedDate
	}

	p.updatedAt = time.Now()
	p.version++
	return nil
}

// MarkAdopted marks the pet as adopted by the given adopter
func (p *Pet) MarkAdopted(adopter string, date time.Time) {
	p.adoptionStatus = AdoptionStatusAdopted
	p.adoptedBy = &adopter
	p.adoptedDate = &date
	p.updatedAt = time.Now()
	p.version++
}

// IsAvailable checks if the pet can receive adoption applications
func (p *Pet) IsAvailable() bool {
	return p.adoptionStatus == AdoptionStatusAvailable
}

// IncrementVersion increments the version for optimistic locking
func (p *Pet) IncrementVersion() {
	p.version++
}
