package activity

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/activity"
)

// CreateActivityRequest represents a new shelter activity
type CreateActivityRequest struct {
	Title            string    `json:"title" binding:"required,min=1,max=200"`
	Type             string    `json:"type" binding:"required,oneof=adoption volunteer training fundraising education"`
	StartDate        time.Time `json:"startDate" binding:"required"`
	EndDate          time.Time `json:"endDate" binding:"required"`
	Location         string    `json:"location" binding:"required,min=1,max=200"`
	Description      string    `json:"description" binding:"omitempty,max=2000"`
	ParticipantLimit *int      `json:"participantLimit,omitempty" binding:"omitempty,gt=0"`
	Organizer        string    `json:"organizer" binding:"required,min=1,max=100"`
	Requirements     *string   `json:"requirements,omitempty" binding:"omitempty,max=1000"`
	Images           []string  `json:"images,omitempty"`
	Tags             []string  `json:"tags,omitempty"`
}

// UpdateActivityRequest represents a partial update to an activity
type UpdateActivityRequest struct {
	Title            *string    `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Type             *string    `json:"type,omitempty" binding:"omitempty,oneof=adoption volunteer training fundraising education"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Location         *string    `json:"location,omitempty" binding:"omitempty,min=1,max=200"`
	Description      *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	ParticipantLimit *int       `json:"participantLimit,omitempty" binding:"omitempty,gt=0"`
	Status           *string    `json:"status,omitempty" binding:"omitempty,oneof=upcoming ongoing completed cancelled"`
	Organizer        *string    `json:"organizer,omitempty" binding:"omitempty,min=1,max=100"`
	Requirements     *string    `json:"requirements,omitempty" binding:"omitempty,max=1000"`
	Images           []string   `json:"images,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
}

// ListActivitiesQuery carries the list filters parsed from the query string
type ListActivitiesQuery struct {
	Type     string
	Status   string
	Title    string
	Location string
	Page     int
	Limit    int
}

// ActivityResponse represents an activity in API responses
type ActivityResponse struct {
	ID               uint      `json:"id"`
	Title            string    `json:"title"`
	Type             string    `json:"type"`
	StartDate        time.Time `json:"startDate"`
	EndDate          time.Time `json:"endDate"`
	Location         string    `json:"location"`
	Description      string    `json:"description"`
	ParticipantLimit *int      `json:"participantLimit,omitempty"`
	ParticipantCount int       `json:"participantCount"`
	Status           string    `json:"status"`
	Organizer        string    `json:"organizer"`
	Requirements     *string   `json:"requirements,omitempty"`
	Images           []string  `json:"images"`
	Tags             []string  `json:"tags"`
	CreateTime       time.Time `json:"createTime"`
	UpdateTime       time.Time `json:"updateTime"`
}

// ActivityStatsResponse represents the activity statistics
type ActivityStatsResponse struct {
	Total     int64 `json:"total"`
	Upcoming  int64 `json:"upcoming"`
	Ongoing   int64 `json:"ongoing"`
	Completed int64 `json:"completed"`
}

func toActivityResponse(a *activity.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:               a.ID(),
		Title:            a.Title(),
		Type:             a.Type().String(),
		StartDate:        a.StartDate(),
		EndDate:          a.EndDate(),
		Location:         a.Location(),
		Description:      a.Description(),
		ParticipantLimit: a.ParticipantLimit(),
		ParticipantCount: a.ParticipantCount(),
		Status:           a.Status().String(),
		Organizer:        a.Organizer(),
		Requirements:     a.Requirements(),
		Images:           a.Images(),
		Tags:             a.Tags(),
		CreateTime:       a.CreatedAt(),
		UpdateTime:       a.UpdatedAt(),
	}
}

func toActivityResponses(activities []*activity.Activity) []*ActivityResponse {
	out := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}
