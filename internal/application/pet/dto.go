package pet

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/pet"
)

// CreatePetRequest represents a request to register a new pet
type CreatePetRequest struct {
	Name           string     `json:"name" binding:"required,min=1,max=100"`
	Type           string     `json:"type" binding:"required,oneof=dog cat rabbit bird hamster other"`
	Breed          string     `json:"breed" binding:"required,min=1,max=100"`
	Age            int        `json:"age" binding:"gte=0"`
	Gender         string     `json:"gender" binding:"required,oneof=male female"`
	Weight         *float64   `json:"weight,omitempty" binding:"omitempty,gt=0"`
	Color          *string    `json:"color,omitempty" binding:"omitempty,max=50"`
	HealthStatus   *string    `json:"healthStatus,omitempty" binding:"omitempty,oneof=healthy treating recovered critical"`
	AdoptionStatus *string    `json:"adoptionStatus,omitempty" binding:"omitempty,oneof=available pending adopted unavailable"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Images         []string   `json:"images,omitempty"`
	Location       *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	RescueDate     *time.Time `json:"rescueDate,omitempty"`
	Rescuer        *string    `json:"rescuer,omitempty" binding:"omitempty,max=100"`
	Tags           []string   `json:"tags,omitempty"`
}

// UpdatePetRequest represents a partial update to a pet
type UpdatePetRequest struct {
	Name           *string    `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Type           *string    `json:"type,omitempty" binding:"omitempty,oneof=dog cat rabbit bird hamster other"`
	Breed          *string    `json:"breed,omitempty" binding:"omitempty,min=1,max=100"`
	Age            *int       `json:"age,omitempty" binding:"omitempty,gte=0"`
	Gender         *string    `json:"gender,omitempty" binding:"omitempty,oneof=male female"`
	Weight         *float64   `json:"weight,omitempty" binding:"omitempty,gt=0"`
	Color          *string    `json:"color,omitempty" binding:"omitempty,max=50"`
	HealthStatus   *string    `json:"healthStatus,omitempty" binding:"omitempty,oneof=healthy treating recovered critical"`
	AdoptionStatus *string    `json:"adoptionStatus,omitempty" binding:"omitempty,oneof=available pending adopted unavailable"`
	Description    *string    `json:"description,omitempty" binding:"omitempty,max=2000"`
	Images         []string   `json:"images,omitempty"`
	Location       *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	RescueDate     *time.Time `json:"rescueDate,omitempty"`
	Rescuer        *string    `json:"rescuer,omitempty" binding:"omitempty,max=100"`
	Tags           []string   `json:"tags,omitempty"`
	AdoptedBy      *string    `json:"adoptedBy,omitempty" binding:"omitempty,max=100"`
	AdoptedDate    *time.Time `json:"adoptedDate,omitempty"`
}

// ListPetsQuery carries the list filters parsed from the query string
type ListPetsQuery struct {
	Type           string
	Gender         string
	HealthStatus   string
	AdoptionStatus string
	Location       string
	Page           int
	Limit          int
}

// PetResponse represents a pet in API responses
type PetResponse struct {
	ID             uint       `json:"id"`
	Name           string     `json:"name"`
	Type           string     `json:"type"`
	Breed          string     `json:"breed"`
	Age            int        `json:"age"`
	Gender         string     `json:"gender"`
	Weight         *float64   `json:"weight,omitempty"`
	Color          *string    `json:"color,omitempty"`
	HealthStatus   string     `json:"healthStatus"`
	AdoptionStatus string     `json:"adoptionStatus"`
	Description    *string    `json:"description,omitempty"`
	Images         []string   `json:"images"`
	Location       *string    `json:"location,omitempty"`
	RescueDate     *time.Time `json:"rescueDate,omitempty"`
	Rescuer        *string    `json:"rescuer,omitempty"`
	Tags           []string   `json:"tags"`
	ViewCount      int        `json:"viewCount"`
	FavoriteCount  int        `json:"favoriteCount"`
	AdoptedBy      *string    `json:"adoptedBy,omitempty"`
	AdoptedDate    *time.Time `json:"adoptedDate,omitempty"`
	CreateTime     time.Time  `json:"createTime"`
	UpdateTime     time.Time  `json:"updateTime"`
}

// PetStatsResponse represents the pet statistics
type PetStatsResponse struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Adopted   int64 `json:"adopted"`
	Treating  int64 `json:"treating"`
}

func toPetResponse(p *pet.Pet) *PetResponse {
	return &PetResponse{
		ID:             p.ID(),
		Name:           p.Name(),
		Type:           p.Type().String(),
		Breed:          p.Breed(),
		Age:            p.Age(),
		Gender:         p.Gender().String(),
		Weight:         p.Weight(),
		Color:          p.Color(),
		HealthStatus:   p.HealthStatus().String(),
		AdoptionStatus: p.AdoptionStatus().String(),
		Description:    p.Description(),
		Images:         p.Images(),
		Location:       p.Location(),
		RescueDate:     p.RescueDate(),
		Rescuer:        p.Rescuer(),
		Tags:           p.Tags(),
		ViewCount:      p.ViewCount(),
		FavoriteCount:  p.FavoriteCount(),
		AdoptedBy:      p.AdoptedBy(),
		AdoptedDate:    p.AdoptedDate(),
		CreateTime:     p.CreatedAt(),
		UpdateTime:     p.UpdatedAt(),
	}
}

func toPetResponses(pets []*pet.Pet) []*PetResponse {
	out := make([]*PetResponse, 0, len(pets))
	for _, p := range pets {
		out = append(out, toPetResponse(p))
	}
	return out
}
