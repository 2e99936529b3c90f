package volunteer

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
)

// CreateVolunteerRequest represents a new volunteer registration
type CreateVolunteerRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=100"`
	Phone         string   `json:"phone" binding:"required,min=1,max=30"`
	Email         string   `json:"email" binding:"required,email"`
	Age           *int     `json:"age,omitempty" binding:"omitempty,gte=16,lte=100"`
	Occupation    *string  `json:"occupation,omitempty" binding:"omitempty,max=100"`
	Experience    *string  `json:"experience,omitempty" binding:"omitempty,max=1000"`
	AvailableTime *string  `json:"availableTime,omitempty" binding:"omitempty,max=200"`
	Skills        []string `json:"skills,omitempty"`
	Avatar        *string  `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Address       *string  `json:"address,omitempty" binding:"omitempty,max=300"`
}

// UpdateVolunteerRequest represents a partial update to a volunteer
type UpdateVolunteerRequest struct {
	Name          *string  `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Phone         *string  `json:"phone,omitempty" binding:"omitempty,min=1,max=30"`
	Email         *string  `json:"email,omitempty" binding:"omitempty,email"`
	Age           *int     `json:"age,omitempty" binding:"omitempty,gte=16,lte=100"`
	Occupation    *string  `json:"occupation,omitempty" binding:"omitempty,max=100"`
	Experience    *string  `json:"experience,omitempty" binding:"omitempty,max=1000"`
	AvailableTime *string  `json:"availableTime,omitempty" binding:"omitempty,max=200"`
	Status        *string  `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
	Skills        []string `json:"skills,omitempty"`
	Avatar        *string  `json:"avatar,omitempty" binding:"omitempty,max=500"`
	Address       *string  `json:"address,omitempty" binding:"omitempty,max=300"`
}

// AddHoursRequest represents logged service hours
type AddHoursRequest struct {
	Hours float64 `json:"hours" binding:"required,gt=0"`
}

// ListVolunteersQuery carries the list filters parsed from the query string
type ListVolunteersQuery struct {
	Status string
	Name   string
	Skills string
	Page   int
	Limit  int
}

// VolunteerResponse represents a volunteer in API responses
type VolunteerResponse struct {
	ID                     uint      `json:"id"`
	Name                   string    `json:"name"`
	Phone                  string    `json:"phone"`
	Email                  string    `json:"email"`
	Age                    *int      `json:"age,omitempty"`
	Occupation             *string   `json:"occupation,omitempty"`
	Experience             *string   `json:"experience,omitempty"`
	AvailableTime          *string   `json:"availableTime,omitempty"`
	Status                 string    `json:"status"`
	JoinDate               time.Time `json:"joinDate"`
	ActivitiesParticipated int       `json:"activitiesParticipated"`
	TotalHours             float64   `json:"totalHours"`
	Skills                 []string  `json:"skills"`
	Avatar                 *string   `json:"avatar,omitempty"`
	Address                *string   `json:"address,omitempty"`
	CreateTime             time.Time `json:"createTime"`
	UpdateTime             time.Time `json:"updateTime"`
}

// VolunteerStatsResponse represents the volunteer statistics
type VolunteerStatsResponse struct {
	Total      int64   `json:"total"`
	Active     int64   `json:"active"`
	Inactive   int64   `json:"inactive"`
	TotalHours float64 `json:"totalHours"`
}

func toVolunteerResponse(v *volunteer.Volunteer) *VolunteerResponse {
	return &VolunteerResponse{
		ID:                     v.ID(),
		Name:                   v.Name(),
		Phone:                  v.Phone(),
		Email:                  v.Email(),
		Age:                    v.Age(),
		Occupation:             v.Occupation(),
		Experience:             v.Experience(),
		AvailableTime:          v.AvailableTime(),
		Status:                 v.Status().String(),
		JoinDate:               v.JoinDate(),
		ActivitiesParticipated: v.ActivitiesParticipated(),
		TotalHours:             v.TotalHours(),
		Skills:                 v.Skills(),
		Avatar:                 v.Avatar(),
		Address:                v.Address(),
		CreateTime:             v.CreatedAt(),
		UpdateTime:             v.UpdatedAt(),
	}
}

func toVolunteerResponses(volunteers []*volunteer.Volunteer) []*VolunteerResponse {
	out := make([]*VolunteerResponse, 0, len(volunteers))
	for _, v := range volunteers {
		out = append(out, toVolunteerResponse(v))
	}
	return out
}
