// Package adoptionrecord provides the domain model for completed adoption
// records and their post-adoption follow-up visits.
package adoptionrecord

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status represents the lifecycle state of an adoption record
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// FollowUp is a single post-adoption visit entry. Entries are append-only.
type FollowUp struct {
	ID               string     `json:"id"`
	Date             time.Time  `json:"date"`
	Content          string     `json:"content"`
	Operator         string     `json:"operator"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
}

// Record represents the adoption record aggregate root.
type Record struct {
	id                    string
	adoptionApplicationID *uint
	recordNumber          string
	petID                 uint
	petName               string
	petBreed              *string
	petImage              *string
	adopterID             uint
	adopterName           string
	adopterPhone          *string
	adopterEmail          *string
	adopterAddress        *string
	adoptionDate          time.Time
	agreementNumber       *string
	status                Status
	followUps             []FollowUp
	lastFollowUpDate      *time.Time
	nextFollowUpDate      *time.Time
	remarks               *string
	createdBy             *string
	updatedBy             *string
	createdAt             time.Time
	updatedAt             time.Time
	version               int
}

// NewRecord creates a new active adoption record with a fresh UUID.
// recordNumber is assigned by the caller so it can be regenerated on
// unique-constraint collisions.
func NewRecord(
	recordNumber string,
	petID uint,
	petName string,
	adopterID uint,
	adopterName string,
	adoptionDate time.Time,
) (*Record, error) {
	if recordNumber == "" {
		return nil, fmt.Errorf("record number is required")
	}
	if petID == 0 {
		return nil, fmt.Errorf("pet ID is required")
	}
	if petName == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if adopterID == 0 {
		return nil, fmt.Errorf("adopter ID is required")
	}
	if adopterName == "" {
		return nil, fmt.Errorf("adopter name is required")
	}
	if adoptionDate.IsZero() {
		adoptionDate = time.Now()
	}

	now := time.Now()
	return &Record{
		id:           uuid.NewString(),
		recordNumber: recordNumber,
		petID:        petID,
		petName:      petName,
		adopterID:    adopterID,
		adopterName:  adopterName,
		adoptionDate: adoptionDate,
		status:       StatusActive,
		followUps:    []FollowUp{},
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructRecord reconstructs an adoption record from persistence
func ReconstructRecord(
	id string,
	adoptionApplicationID *uint,
	recordNumber string,
	petID uint,
	petName string,
	petBreed *string,
	petImage *string,
	adopterID uint,
	adopterName string,
	adopterPhone *string,
	adopterEmail *string,
	adopterAddress *string,
	adoptionDate time.Time,
	agreementNumber *string,
	status Status,
	followUps []FollowUp,
	lastFollowUpDate *time.Time,
	nextFollowUpDate *time.Time,
	remarks *string,
	createdBy *string,
	updatedBy *string,
	createdAt, updatedAt time.Time,
	version int,
) (*Record, error) {
	if id == "" {
		return nil, fmt.Errorf("record ID is required")
	}
	if recordNumber == "" {
		return nil, fmt.Errorf("record number is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid record status: %s", status)
	}

	if followUps == nil {
		followUps = []FollowUp{}
	}

	return &Record{
		id:                    id,
		adoptionApplicationID: adoptionApplicationID,
		recordNumber:          recordNumber,
		petID:                 petID,
		petName:               petName,
		petBreed:              petBreed,
		petImage:              petImage,
		adopterID:             adopterID,
		adopterName:           adopterName,
		adopterPhone:          adopterPhone,
		adopterEmail:          adopterEmail,
		adopterAddress:        adopterAddress,
		adoptionDate:          adoptionDate,
		agreementNumber:       agreementNumber,
		status:                status,
		followUps:             followUps,
		lastFollowUpDate:      lastFollowUpDate,
		nextFollowUpDate:      nextFollowUpDate,
		remarks:               remarks,
		createdBy:             createdBy,
		updatedBy:             updatedBy,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
		version:               version,
	}, nil
}

func (r *Record) ID() string                   { return r.id }
func (r *Record) AdoptionApplicationID() *uint { return r.adoptionApplicationID }
func (r *Record) RecordNumber() string         { return r.recordNumber }
func (r *Record) PetID() uint                  { return r.petID }
func (r *Record) PetName() string              { return r.petName }
func (r *Record) PetBreed() *string            { return r.petBreed }
func (r *Record) PetImage() *string            { return r.petImage }
func (r *Record) AdopterID() uint              { return r.adopterID }
func (r *Record) AdopterName() string          { return r.adopterName }
func (r *Record) AdopterPhone() *string        { return r.adopterPhone }
func (r *Record) AdopterEmail() *string        { return r.adopterEmail }
func (r *Record) AdopterAddress() *string      { return r.adopterAddress }
func (r *Record) AdoptionDate() time.Time      { return r.adoptionDate }
func (r *Record) AgreementNumber() *string     { return r.agreementNumber }
func (r *Record) Status() Status               { return r.status }
func (r *Record) FollowUps() []FollowUp        { return r.followUps }
func (r *Record) LastFollowUpDate() *time.Time { return r.lastFollowUpDate }
func (r *Record) NextFollowUpDate() *time.Time { return r.nextFollowUpDate }
func (r *Record) Remarks() *string             { return r.remarks }
func (r *Record) CreatedBy() *string           { return r.createdBy }
func (r *Record) UpdatedBy() *string           { return r.updatedBy }
func (r *Record) CreatedAt() time.Time         { return r.createdAt }
func (r *Record) UpdatedAt() time.Time         { return r.updatedAt }

// Version returns the aggregate version for optimistic locking
func (r *Record) Version() int { return r.version }

// SetRecordNumber replaces the record number before first persistence,
// used when regeneration is needed after a unique-constraint collision
func (r *Record) SetRecordNumber(number string) error {
	if number == "" {
		return fmt.Errorf("record number cannot be empty")
	}
	r.recordNumber = number
	return nil
}

// SetApplicationDetails links the record to its originating application
// and fills optional pet and adopter details at creation time
func (r *Record) SetApplicationDetails(applicationID *uint, petBreed, petImage, adopterPhone, adopterEmail, adopterAddress, agreementNumber, remarks, operator *string) {
	r.adoptionApplicationID = applicationID
	r.petBreed = petBreed
	r.petImage = petImage
	r.adopterPhone = adopterPhone
	r.adopterEmail = adopterEmail
	r.adopterAddress = adopterAddress
	r.agreementNumber = agreementNumber
	r.remarks = remarks
	r.createdBy = operator
	r.updatedBy = operator
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	PetName         *string
	PetBreed        *string
	PetImage        *string
	AdopterName     *string
	AdopterPhone    *string
	AdopterEmail    *string
	AdopterAddress  *string
	AdoptionDate    *time.Time
	AgreementNumber *string
	Status          *Status
	Remarks         *string
	UpdatedBy       *string
}

// Update applies a partial update to the record
func (r *Record) Update(attrs UpdateAttrs) error {
	if attrs.PetName != nil {
		if *attrs.PetName == "" {
			return fmt.Errorf("pet name cannot be empty")
		}
		r.petName = *attrs.PetName
	}
	if attrs.PetBreed != nil {
		r.petBreed = attrs.PetBreed
	}
	if attrs.PetImage != nil {
		r.petImage = attrs.PetImage
	}
	if attrs.AdopterName != nil {
		if *attrs.AdopterName == "" {
			return fmt.Errorf("adopter name cannot be empty")
		}
		r.adopterName = *attrs.AdopterName
	}
	if attrs.AdopterPhone != nil {
		r.adopterPhone = attrs.AdopterPhone
	}
	if attrs.AdopterEmail != nil {
		r.adopterEmail = attrs.AdopterEmail
	}
	if attrs.AdopterAddress != nil {
		r.adopterAddress = attrs.AdopterAddress
	}
	if attrs.AdoptionDate != nil {
		r.adoptionDate = *attrs.AdoptionDate
	}
	if attrs.AgreementNumber != nil {
		r.agreementNumber = attrs.AgreementNumber
	}
	if attrs.Status != nil {
		if !attrs.Status.IsValid() {
			return fmt.Errorf("invalid record status: %s", *attrs.Status)
		}
		r.status = *attrs.Status
	}
	if attrs.Remarks != nil {
		r.remarks = attrs.Remarks
	}
	if attrs.UpdatedBy != nil {
		r.updatedBy = attrs.UpdatedBy
	}

	r.updatedAt = time.Now()
	r.version++
	return nil
}

// AddFollowUp appends a follow-up entry and recomputes the follow-up dates.
// The entry list is append-only, existing entries are never modified.
func (r *Record) AddFollowUp(content, operator string, nextFollowUpDate *time.Time) (FollowUp, error) {
	if content == "" {
		return FollowUp{}, fmt.Errorf("follow-up content is required")
	}
	if operator == "" {
		return FollowUp{}, fmt.Errorf("follow-up operator is required")
	}

	now := time.Now()
	entry := FollowUp{
		ID:               uuid.NewString(),
		Date:             now,
		Content:          content,
		Operator:         operator,
		NextFollowUpDate: nextFollowUpDate,
	}

	r.followUps = append(r.followUps, entry)
	r.lastFollowUpDate = &now
	r.nextFollowUpDate = nextFollowUpDate
	r.updatedBy = &operator
	r.updatedAt = now
	r.version++

	return entry, nil
}

// IncrementVersion increments the version for optimistic locking
func (r *Record) IncrementVersion() {
	r.version++
}
