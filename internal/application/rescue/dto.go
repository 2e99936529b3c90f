package rescue

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/rescue"
)

// CreateRescueRequest represents a new rescue record
type CreateRescueRequest struct {
	PetID           uint       `json:"petId" binding:"required"`
	PetName         string     `json:"petName" binding:"required,min=1,max=100"`
	RescueDate      *time.Time `json:"rescueDate,omitempty"`
	RescueLocation  string     `json:"rescueLocation" binding:"required,min=1,max=200"`
	Rescuer         string     `json:"rescuer" binding:"required,min=1,max=100"`
	RescueType      string     `json:"rescueType" binding:"omitempty,max=50"`
	Description     string     `json:"description" binding:"omitempty,max=2000"`
	HealthCondition string     `json:"healthCondition" binding:"omitempty,max=100"`
	ImmediateAction string     `json:"immediateAction" binding:"omitempty,max=500"`
	Images          []string   `json:"images,omitempty"`
	VideoURL        *string    `json:"videoUrl,omitempty" binding:"omitempty,url"`
	Cost            *float64   `json:"cost,omitempty" binding:"omitempty,gte=0"`
	Notes           *string    `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateRescueRequest represents a partial update to a rescue record
type UpdateRescueRequest struct {
	PetName         *string    `json:"petName,omitempty" binding:"omitempty,min=1,max=100"`
	RescueDate      *time.Time `json:"rescueDate,omitempty"`
	RescueLocation  *string    `json:"rescueLocation,omitempty" binding:"omitempty,min=1,max=200"`
	Rescuer         *string    `json:"rescuer,omitempty" binding:"omitempty,min=1,max=100"`
	RescueType      *string    `json:"rescueType,omitempty" binding:"omitempty,max=50"`
	Description     *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	HealthCondition *string    `json:"healthCondition,omitempty" binding:"omitempty,max=100"`
	ImmediateAction *string    `json:"immediateAction,omitempty" binding:"omitempty,max=500"`
	Images          []string   `json:"images,omitempty"`
	VideoURL        *string    `json:"videoUrl,omitempty" binding:"omitempty,url"`
	Cost            *float64   `json:"cost,omitempty" binding:"omitempty,gte=0"`
	Notes           *string    `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ListRescuesQuery carries the list filters parsed from the query string
type ListRescuesQuery struct {
	Rescuer         string
	RescueType      string
	HealthCondition string
	RescueLocation  string
	Page            int
	Limit           int
}

// RescueResponse represents a rescue record in API responses
type RescueResponse struct {
	ID              uint      `json:"id"`
	PetID           uint      `json:"petId"`
	PetName         string    `json:"petName"`
	RescueDate      time.Time `json:"rescueDate"`
	RescueLocation  string    `json:"rescueLocation"`
	Rescuer         string    `json:"rescuer"`
	RescueType      string    `json:"rescueType"`
	Description     string    `json:"description"`
	HealthCondition string    `json:"healthCondition"`
	ImmediateAction string    `json:"immediateAction"`
	Images          []string  `json:"images"`
	VideoURL        *string   `json:"videoUrl,omitempty"`
	Cost            *float64  `json:"cost,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreateTime      time.Time `json:"createTime"`
	UpdateTime      time.Time `json:"updateTime"`
}

// RescueStatsResponse represents the rescue statistics
type RescueStatsResponse struct {
	Total     int64   `json:"total"`
	Pending   int64   `json:"pending"`
	Completed int64   `json:"completed"`
	TotalCost float64 `json:"totalCost"`
}

func toRescueResponse(r *rescue.Rescue) *RescueResponse {
	return &RescueResponse{
		ID:              r.ID(),
		PetID:           r.PetID(),
		PetName:         r.PetName(),
		RescueDate:      r.RescueDate(),
		RescueLocation:  r.RescueLocation(),
		Rescuer:         r.Rescuer(),
		RescueType:      r.RescueType(),
		Description:     r.Description(),
		HealthCondition: r.HealthCondition(),
		ImmediateAction: r.ImmediateAction(),
		Images:          r.Images(),
		VideoURL:        r.VideoURL(),
		Cost:            r.Cost(),
		Notes:           r.Notes(),
		CreateTime:      r.CreatedAt(),
		UpdateTime:      r.UpdatedAt(),
	}
}

func toRescueResponses(rescues []*rescue.Rescue) []*RescueResponse {
	out := make([]*RescueResponse, 0, len(rescues))
	for _, r := range rescues {
		out = append(out, toRescueResponse(r))
	}
	return out
}
