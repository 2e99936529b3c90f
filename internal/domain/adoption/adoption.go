// Package adoption provides the domain model for adoption applications.
package adoption

import (
	"fmt"
	"time"
)

// Status represents the review state of an adoption application
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// legalTransitions is the explicit transition table. Applications leave
// pending exactly once and terminal states accept no further transitions.
var legalTransitions = map[Status][]Status{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {},
	StatusRejected:  {},
	StatusCancelled: {},
}

// CanTransitionTo checks whether the status may move to the target state
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range legalTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Applicant holds the contact details of an adoption applicant
type Applicant struct {
	Name    string
	Phone   string
	Email   string
	IDCard  string
	Address string
}

// Adoption represents the adoption application aggregate root.
type Adoption struct {
	id              uint
	petID           uint
	petName         string
	applicant       Applicant
	applicationDate time.Time
	status          Status
	approvalDate    *time.Time
	approver        *string
	rejectionDate   *time.Time
	rejecter        *string
	rejectReason    *string
	remarks         *string
	experience      *string
	housingType     *string
	hasYard         bool
	familyMembers   *int
	workHours       *string
	reviewNotes     []string
	createdAt       time.Time
	updatedAt       time.Time
	version         int
}

// NewAdoption creates a new adoption application in pending state
func NewAdoption(petID uint, petName string, applicant Applicant) (*Adoption, error) {
	if petID == 0 {
		return nil, fmt.Errorf("pet ID is required")
	}
	if petName == "" {
		return nil, fmt.Errorf("pet name is required")
	}
	if applicant.Name == "" {
		return nil, fmt.Errorf("applicant name is required")
	}
	if applicant.Phone == "" {
		return nil, fmt.Errorf("applicant phone is required")
	}

	now := time.Now()
	return &Adoption{
		petID:           petID,
		petName:         petName,
		applicant:       applicant,
		applicationDate: now,
		status:          StatusPending,
		reviewNotes:     []string{},
		createdAt:       now,
		updatedAt:       now,
		version:         1,
	}, nil
}

// ReconstructAdoption reconstructs an adoption application from persistence
func ReconstructAdoption(
	id uint,
	petID uint,
	petName string,
	applicant Applicant,
	applicationDate time.Time,
	status Status,
	approvalDate *time.Time,
	approver *string,
	rejectionDate *time.Time,
	rejecter *string,
	rejectReason *string,
	remarks *string,
	experience *string,
	housingType *string,
	hasYard bool,
	familyMembers *int,
	workHours *string,
	reviewNotes []string,
	createdAt, updatedAt time.Time,
	version int,
) (*Adoption, error) {
	if id == 0 {
		return nil, fmt.Errorf("adoption ID cannot be zero")
	}
	if petID == 0 {
		return nil, fmt.Errorf("pet ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid adoption status: %s", status)
	}

	if reviewNotes == nil {
		reviewNotes = []string{}
	}

	return &Adoption{
		id:              id,
		petID:           petID,
		petName:         petName,
		applicant:       applicant,
		applicationDate: applicationDate,
		status:          status,
		approvalDate:    approvalDate,
		approver:        approver,
		rejectionDate:   rejectionDate,
		rejecter:        rejecter,
		rejectReason:    rejectReason,
		remarks:         remarks,
		experience:      experience,
		housingType:     housingType,
		hasYard:         hasYard,
		familyMembers:   familyMembers,
		workHours:       workHours,
		reviewNotes:     reviewNotes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		version:         version,
	}, nil
}

func (a *Adoption) ID() uint                   { return a.id }
func (a *Adoption) PetID() uint                { return a.petID }
func (a *Adoption) PetName() string            { return a.petName }
func (a *Adoption) Applicant() Applicant       { return a.applicant }
func (a *Adoption) ApplicationDate() time.Time { return a.applicationDate }
func (a *Adoption) Status() Status             { return a.status }
func (a *Adoption) ApprovalDate() *time.Time   { return a.approvalDate }
func (a *Adoption) Approver() *string          { return a.approver }
func (a *Adoption) RejectionDate() *time.Time  { return a.rejectionDate }
func (a *Adoption) Rejecter() *string          { return a.rejecter }
func (a *Adoption) RejectReason() *string      { return a.rejectReason }
func (a *Adoption) Remarks() *string           { return a.remarks }
func (a *Adoption) Experience() *string        { return a.experience }
func (a *Adoption) HousingType() *string       { return a.housingType }
func (a *Adoption) HasYard() bool              { return a.hasYard }
func (a *Adoption) FamilyMembers() *int        { return a.familyMembers }
func (a *Adoption) WorkHours() *string         { return a.workHours }
func (a *Adoption) ReviewNotes() []string      { return a.reviewNotes }
func (a *Adoption) CreatedAt() time.Time       { return a.createdAt }
func (a *Adoption) UpdatedAt() time.Time       { return a.updatedAt }

// Version returns the aggregate version for optimistic locking
func (a *Adoption) Version() int { return a.version }

// SetID sets the adoption ID (only for persistence layer use)
func (a *Adoption) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("adoption ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("adoption ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsPending checks if the application is still awaiting review
func (a *Adoption) IsPending() bool {
	return a.status == StatusPending
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	ApplicantName    *string
	ApplicantPhone   *string
	ApplicantEmail   *string
	ApplicantIDCard  *string
	ApplicantAddress *string
	Remarks          *string
	Experience       *string
	HousingType      *string
	HasYard          *bool
	FamilyMembers    *int
	WorkHours        *string
	ReviewNotes      []string
}

// Update applies a partial update to a pending application
func (a *Adoption) Update(attrs UpdateAttrs) error {
	if a.status != StatusPending {
		return fmt.Errorf("only pending applications can be updated, current status: %s", a.status)
	}

	if attrs.ApplicantName != nil {
		if *attrs.ApplicantName == "" {
			return fmt.Errorf("applicant name cannot be empty")
		}
		a.applicant.Name = *attrs.ApplicantName
	}
	if attrs.ApplicantPhone != nil {
		a.applicant.Phone = *attrs.ApplicantPhone
	}
	if attrs.ApplicantEmail != nil {
		a.applicant.Email = *attrs.ApplicantEmail
	}
	if attrs.ApplicantIDCard != nil {
		a.applicant.IDCard = *attrs.ApplicantIDCard
	}
	if attrs.ApplicantAddress != nil {
		a.applicant.Address = *attrs.ApplicantAddress
	}
	if attrs.Remarks != nil {
		a.remarks = attrs.Remarks
	}
	if attrs.Experience != nil {
		a.experience = attrs.Experience
	}
	if attrs.HousingType != nil {
		a.housingType = attrs.HousingType
	}
	if attrs.HasYard != nil {
		a.hasYard = *attrs.HasYard
	}
	if attrs.FamilyMembers != nil {
		a.familyMembers = attrs.FamilyMembers
	}
	if attrs.WorkHours != nil {
		a.workHours = attrs.WorkHours
	}
	if attrs.ReviewNotes != nil {
		a.reviewNotes = attrs.ReviewNotes
	}

	a.updatedAt = time.Now()
	a.version++
	return nil
}

// Approve approves a pending application
func (a *Adoption) Approve(approver string, remarks *string) error {
	if !a.status.CanTransitionTo(StatusApproved) {
		return fmt.Errorf("only pending applications can be approved, current status: %s", a.status)
	}

	now := time.Now()
	a.status = StatusApproved
	a.approvalDate = &now
	a.approver = &approver
	if remarks != nil {
		a.remarks = remarks
	}
	a.updatedAt = now
	a.version++
	return nil
}

// Reject rejects a pending application with a mandatory reason
func (a *Adoption) Reject(rejecter string, reason string, remarks *string) error {
	if !a.status.CanTransitionTo(StatusRejected) {
		return fmt.Errorf("only pending applications can be rejected, current status: %s", a.status)
	}
	if reason == "" {
		return fmt.Errorf("reject reason is required")
	}

	now := time.Now()
	a.status = StatusRejected
	a.rejectionDate = &now
	a.rejecter = &rejecter
	a.rejectReason = &reason
	if remarks != nil {
		a.remarks = remarks
	}
	a.updatedAt = now
	a.version++
	return nil
}

// Cancel cancels a pending application
func (a *Adoption) Cancel() error {
	if !a.status.CanTransitionTo(StatusCancelled) {
		return fmt.Errorf("only pending applications can be cancelled, current status: %s", a.status)
	}

	a.status = StatusCancelled
	a.updatedAt = time.Now()
	a.version++
	return nil
}

// IncrementVersion increments the version for optimistic locking
func (a *Adoption) IncrementVersion() {
	a.version++
}
