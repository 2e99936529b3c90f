// Package activity provides the domain model for shelter events.
package activity

import (
	"fmt"
	"time"
)

// ActivityType represents the category of an activity
type ActivityType string

const (
	ActivityTypeAdoption    ActivityType = "adoption"
	ActivityTypeVolunteer   ActivityType = "volunteer"
	ActivityTypeTraining    ActivityType = "training"
	ActivityTypeFundraising ActivityType = "fundraising"
	ActivityTypeEducation   ActivityType = "education"
)

// IsValid checks if the activity type is valid
func (t ActivityType) IsValid() bool {
	switch t {
	case ActivityTypeAdoption, ActivityTypeVolunteer, ActivityTypeTraining, ActivityTypeFundraising, ActivityTypeEducation:
		return true
	}
	return false
}

// String returns the string representation of the type
func (t ActivityType) String() string {
	return string(t)
}

// Status represents the schedule state of an activity
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid checks if the status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status
func (s Status) String() string {
	return string(s)
}

// Activity represents the shelter event aggregate root.
type Activity struct {
	id               uint
	title            string
	activityType     ActivityType
	startDate        time.Time
	endDate          time.Time
	location         string
	description      string
	participantLimit *int
	participantCount int
	status           Status
	organizer        string
	requirements     *string
	images           []string
	tags             []string
	createdAt        time.Time
	updatedAt        time.Time
	version          int
}

// NewActivity creates a new upcoming activity
func NewActivity(
	title string,
	activityType ActivityType,
	startDate, endDate time.Time,
	location string,
	description string,
	organizer string,
) (*Activity, error) {
	if title == "" {
		return nil, fmt.Errorf("activity title is required")
	}
	if !activityType.IsValid() {
		return nil, fmt.Errorf("invalid activity type: %s", activityType)
	}
	if startDate.IsZero() || endDate.IsZero() {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("end date cannot be before start date")
	}
	if location == "" {
		return nil, fmt.Errorf("activity location is required")
	}
	if organizer == "" {
		return nil, fmt.Errorf("activity organizer is required")
	}

	now := time.Now()
	return &Activity{
		title:        title,
		activityType: activityType,
		startDate:    startDate,
		endDate:      endDate,
		location:     location,
		description:  description,
		status:       StatusUpcoming,
		organizer:    organizer,
		images:       []string{},
		tags:         []string{},
		createdAt:    now,
		updatedAt:    now,
		version:      1,
	}, nil
}

// ReconstructActivity reconstructs an activity from persistence
func ReconstructActivity(
	id uint,
	title string,
	activityType ActivityType,
	startDate, endDate time.Time,
	location string,
	description string,
	participantLimit *int,
	participantCount int,
	status Status,
	organizer string,
	requirements *string,
	images []string,
	tags []string,
	createdAt, updatedAt time.Time,
	version int,
) (*Activity, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if !activityType.IsValid() {
		return nil, fmt.Errorf("invalid activity type: %s", activityType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid activity status: %s", status)
	}

	if images == nil {
		images = []string{}
	}
	if tags == nil {
		tags = []string{}
	}

	return &Activity{
		id:               id,
		title:            title,
		activityType:     activityType,
		startDate:        startDate,
		endDate:          endDate,
		location:         location,
		description:      description,
		participantLimit: participantLimit,
		participantCount: participantCount,
		status:           status,
		organizer:        organizer,
		requirements:     requirements,
		images:           images,
		tags:             tags,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		version:          version,
	}, nil
}

func (a *Activity) ID() uint               { return a.id }
func (a *Activity) Title() string          { return a.title }
func (a *Activity) Type() ActivityType     { return a.activityType }
func (a *Activity) StartDate() time.Time   { return a.startDate }
func (a *Activity) EndDate() time.Time     { return a.endDate }
func (a *Activity) Location() string       { return a.location }
func (a *Activity) Description() string    { return a.description }
func (a *Activity) ParticipantLimit() *int { return a.participantLimit }
func (a *Activity) ParticipantCount() int  { return a.participantCount }
func (a *Activity) Status() Status         { return a.status }
func (a *Activity) Organizer() string      { return a.organizer }
func (a *Activity) Requirements() *string  { return a.requirements }
func (a *Activity) Images() []string       { return a.images }
func (a *Activity) Tags() []string         { return a.tags }
func (a *Activity) CreatedAt() time.Time   { return a.createdAt }
func (a *Activity) UpdatedAt() time.Time   { return a.updatedAt }

// Version returns the aggregate version for optimistic locking
func (a *Activity) Version() int { return a.version }

// SetID sets the activity ID (only for persistence layer use)
func (a *Activity) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsFull checks whether the participant limit has been reached
func (a *Activity) IsFull() bool {
	return a.participantLimit != nil && a.participantCount >= *a.participantLimit
}

// UpdateAttrs carries the optional fields for a partial update.
// Nil pointers leave the current value untouched.
type UpdateAttrs struct {
	Title            *string
	Type             *ActivityType
	StartDate        *time.Time
	EndDate          *time.Time
	Location         *string
	Description      *string
	ParticipantLimit *int
	Status           *Status
	Organizer        *string
	Requirements     *string
	Images           []string
	Tags             []string
}

// Update applies a partial update to the activity
func (a *Activity) Update(attrs UpdateAttrs) error {
	if attrs.Title != nil {
		if *attrs.Title == "" {
			return fmt.Errorf("activity title cannot be empty")
		}
		a.title = *attrs.Title
	}
	if attrs.Type != nil {
		if !attrs.Type.IsValid() {
			return fmt.Errorf("invalid activity type: %s", *attrs.Type)
		}
		a.activityType = *attrs.Type
	}
	if attrs.StartDate != nil {
		a.startDate = *attrs.StartDate
	}
	if attrs.EndDate != nil {
		a.endDate = *attrs.EndDate
	}
	if a.endDate.Before(a.startDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	if attrs.Location != nil {
		if *attrs.Location == "" {
			return fmt.Errorf("activity location cannot be empty")
		}
		a.location = *attrs.Location
	}
	if attrs.Description != nil {
		a.description = *attrs.Description
	}
	if attrs.ParticipantLimit != nil {
		a.participantLimit = attrs.ParticipantLimit
	}
	if attrs.Status != nil {
		if !attrs.Status.IsValid() {
			return fmt.Errorf("invalid activity status: %s", *attrs.Status)
		}
		a.status = *attrs.Status
	}
	if attrs.Organizer != nil {
		a.organizer = *attrs.Organizer
	}
	if attrs.Requirements != nil {
		a.requirements = attrs.Requirements
	}
	if attrs.Images != nil {
		a.images = attrs.Images
	}
	if attrs.Tags != nil {
		a.tags = attrs.Tags
	}

	a.updatedAt = time.Now()
	a.version++
	return nil
}

// IncrementVersion increments the version for optimistic locking
func (a *Activity) IncrementVersion() {
	a.version++
}
