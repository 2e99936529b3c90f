// Package volunteer provides the domain model for shelter volunteers.
package volunteer

import (
	"fmt"
	"time"
)

// Status represents the engagement state of a volunteer
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Volunteer represents the volunteer aggregate root.
type Volunteer struct {
	id                     uint
	name                   string
	phone                  string
	email                  string
	age                    *int
	occupation             *string
	experience             *string
	availableTime          *string
	status                 Status
	joinDate               time.Time
	activitiesParticipated int
	totalHours             float64
	skills                 []string
	avatar                 *string
	address                *string
	createdAt              time.Time
	updatedAt              time.Time
	version                int
}

// NewVolunteer creates a new active volunteer
func NewVolunteer(name, phone, email string) (*Volunteer, error) {
	if name == "" {
		return nil, fmt.Errorf("volunteer name is required")
	}
	if phone == "" {
		return nil, fmt.Errorf("volunteer phone is required")
	}
	if email == "" {
		return nil, fmt.Errorf("volunteer email is required")
	}

	now := time.Now()
	return &Volunteer{
		name:      name,
		phone:     phone,
		email:     email,
		status:    StatusActive,
		joinDate:  now,
		skills:    []string{},
		createdAt: now,
		updatedAt: now,
		version:   1,
	}, nil
}

// ReconstructVolunteer reconstructs a volunteer from persistence
func ReconstructVolunteer(
	id uint,
	name, phone, email string,
	age *int,
	occupation *string,
	experience *string,
	availableTime *string,
	status Status,
	joinDate time.Time,
	activitiesParticipated int,
	totalHours float64,
	skills []string,
	avatar *string,
	address *string,
	createdAt, updatedAt time.Time,
	version int,
) (*Volunteer, error) {
	if id == 0 {
		return nil, fmt.Errorf("volunteer ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid volunteer status: %s", status)
	}

	if skills == nil {
		skills = []string{}
	}

	return &Volunteer{
		id:                     id,
		name:                   name,
		phone:                  phone,
		email:                  email,
		age:                    age,
		occupation:             occupation,
		experience:             experience,
		availableTime:          availableTime,
		status:                 status,
		joinDate:               joinDate,
		activitiesParticipated: activitiesParticipated,
		totalHours:             totalHours,
		skills:                 skills,
		avatar:                 avatar,
		address:                address,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
		version:                version,
	}, nil
}

func (v *Volunteer) ID() uint                   { return v.id }
func (v *Volunteer) Name() string               { return v.name }
func (v *Volunteer) Phone() string              { return v.phone }
func (v *Volunteer) Email() string              { return v.email }
func (v *Volunteer) Age() *int                  { return v.age }
func (v *Volunteer) Occupation() *string        { return v.occupation }
func (v *Volunteer) Experience() *string        { return v.experience }
func (v *Volunteer) AvailableTime() *string     { return v.availableTime }
func (v *Volunteer) Status() Status             { return v.status }
func (v *Volunteer) JoinDate() time.Time        { return v.joinDate }
func (v *Volunteer) ActivitiesParticipated() int { return v.activitiesParticipated }
func (v *Volunteer) TotalHours() float64        { return v.totalHours }
func (v *Volunteer) Skills() []string           { return v.skills }
func (v *Volunteer) Avatar() *string            { return v.avatar }
func (v *Volunteer) Address() *string           { return v.address }
func (v *Volunteer) CreatedAt() time.Time       { return v.createdAt }
func (v *Volunteer) UpdatedAt() time.Time       { return v.updatedAt }

// Version returns the aggregate version for optimistic locking
func (v *Volunteer) Version() int { return v.version }

// SetID sets the volunteer ID (only for persistence layer use)
func (v *Volunteer) SetID(id uint) error {
	if v.id != 0 {
		return fmt.Errorf("volunteer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("volunteer ID cannot be zero")
	}
	v.id = id
	return nil
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	Name          *string
	Phone         *string
	Email         *string
	Age           *int
	Occupation    *string
	Experience    *string
	AvailableTime *string
	Status        *Status
	Skills        []string
	Avatar        *string
	Address       *string
}

// Update applies a partial update to the volunteer
func (v *Volunteer) Update(attrs UpdateAttrs) error {
	if attrs.Name != nil {
		if *attrs.Name == "" {
			return fmt.Errorf("volunteer name cannot be empty")
		}
		v.name = *attrs.Name
	}
	if attrs.Phone != nil {
		v.phone = *attrs.Phone
	}
	if attrs.Email != nil {
		v.email = *attrs.Email
	}
	if attrs.Age != nil {
		v.age = attrs.Age
	}
	if attrs.Occupation != nil {
		v.occupation = attrs.Occupation
	}
	if attrs.Experience != nil {
		v.experience = attrs.Experience
	}
	if attrs.AvailableTime != nil {
		v.availableTime = attrs.AvailableTime
	}
	if attrs.Status != nil {
		if !attrs.Status.IsValid() {
			return fmt.Errorf("invalid volunteer status: %s", *attrs.Status)
		}
		v.status = *attrs.Status
	}
	if attrs.Skills != nil {
		v.skills = attrs.Skills
	}
	if attrs.Avatar != nil {
		v.avatar = attrs.Avatar
	}
	if attrs.Address != nil {
		v.address = attrs.Address
	}

	v.updatedAt = time.Now()
	v.version++
	return nil
}

// IncrementVersion increments the version for optimistic locking
func (v *Volunteer) IncrementVersion() {
	v.version++
}
