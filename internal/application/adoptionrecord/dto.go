package adoptionrecord

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/adoptionrecord"
)

// CreateRecordRequest represents a new adoption record
type CreateRecordRequest struct {
	AdoptionApplicationID *uint      `json:"adoptionApplicationId,omitempty"`
	PetID                 uint       `json:"petId" binding:"required"`
	PetName               string     `json:"petName" binding:"required,min=1,max=100"`
	PetBreed              *string    `json:"petBreed,omitempty" binding:"omitempty,max=100"`
	PetImage              *string    `json:"petImage,omitempty" binding:"omitempty,max=500"`
	AdopterID             uint       `json:"adopterId" binding:"required"`
	AdopterName           string     `json:"adopterName" binding:"required,min=1,max=100"`
	AdopterPhone          *string    `json:"adopterPhone,omitempty" binding:"omitempty,max=30"`
	AdopterEmail          *string    `json:"adopterEmail,omitempty" binding:"omitempty,email"`
	AdopterAddress        *string    `json:"adopterAddress,omitempty" binding:"omitempty,max=300"`
	AdoptionDate          *time.Time `json:"adoptionDate,omitempty"`
	AgreementNumber       *string    `json:"agreementNumber,omitempty" binding:"omitempty,max=100"`
	Remarks               *string    `json:"remarks,omitempty" binding:"omitempty,max=500"`
	Operator              *string    `json:"operator,omitempty" binding:"omitempty,max=100"`
}

// UpdateRecordRequest represents a partial update to an adoption record
type UpdateRecordRequest struct {
	PetName         *string    `json:"petName,omitempty" binding:"omitempty,min=1,max=100"`
	PetBreed        *string    `json:"petBreed,omitempty" binding:"omitempty,max=100"`
	PetImage        *string    `json:"petImage,omitempty" binding:"omitempty,max=500"`
	AdopterName     *string    `json:"adopterName,omitempty" binding:"omitempty,min=1,max=100"`
	AdopterPhone    *string    `json:"adopterPhone,omitempty" binding:"omitempty,max=30"`
	AdopterEmail    *string    `json:"adopterEmail,omitempty" binding:"omitempty,email"`
	AdopterAddress  *string    `json:"adopterAddress,omitempty" binding:"omitempty,max=300"`
	AdoptionDate    *time.Time `json:"adoptionDate,omitempty"`
	AgreementNumber *string    `json:"agreementNumber,omitempty" binding:"omitempty,max=100"`
	Status          *string    `json:"status,omitempty" binding:"omitempty,oneof=active completed cancelled"`
	Remarks         *string    `json:"remarks,omitempty" binding:"omitempty,max=500"`
	Operator        *string    `json:"operator,omitempty" binding:"omitempty,max=100"`
}

// AddFollowUpRequest represents a follow-up visit entry
type AddFollowUpRequest struct {
	Content          string     `json:"content" binding:"required,min=1,max=1000"`
	Operator         string     `json:"operator" binding:"required,min=1,max=100"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
}

// ListRecordsQuery carries the list filters parsed from the query string
type ListRecordsQuery struct {
	Status       string
	PetName      string
	AdopterName  string
	RecordNumber string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	Limit        int
}

// FollowUpResponse represents a follow-up entry in API responses
type FollowUpResponse struct {
	ID               string     `json:"id"`
	Date             time.Time  `json:"date"`
	Content          string     `json:"content"`
	Operator         string     `json:"operator"`
	NextFollowUpDate *time.Time `json:"nextFollowUpDate,omitempty"`
}

// RecordResponse represents an adoption record in API responses
type RecordResponse struct {
	ID                    string             `json:"id"`
	AdoptionApplicationID *uint              `json:"adoptionApplicationId,omitempty"`
	RecordNumber          string             `json:"recordNumber"`
	PetID                 uint               `json:"petId"`
	PetName               string             `json:"petName"`
	PetBreed              *string            `json:"petBreed,omitempty"`
	PetImage              *string            `json:"petImage,omitempty"`
	AdopterID             uint               `json:"adopterId"`
	AdopterName           string             `json:"adopterName"`
	AdopterPhone          *string            `json:"adopterPhone,omitempty"`
	AdopterEmail          *string            `json:"adopterEmail,omitempty"`
	AdopterAddress        *string            `json:"adopterAddress,omitempty"`
	AdoptionDate          time.Time          `json:"adoptionDate"`
	AgreementNumber       *string            `json:"agreementNumber,omitempty"`
	Status                string             `json:"status"`
	FollowUps             []FollowUpResponse `json:"followUps"`
	LastFollowUpDate      *time.Time         `json:"lastFollowUpDate,omitempty"`
	NextFollowUpDate      *time.Time         `json:"nextFollowUpDate,omitempty"`
	Remarks               *string            `json:"remarks,omitempty"`
	CreatedBy             *string            `json:"createdBy,omitempty"`
	UpdatedBy             *string            `json:"updatedBy,omitempty"`
	CreateTime            time.Time          `json:"createTime"`
	UpdateTime            time.Time          `json:"updateTime"`
}

// RecordStatsResponse represents the adoption record statistics
type RecordStatsResponse struct {
	Total           int64 `json:"total"`
	Active          int64 `json:"active"`
	Completed       int64 `json:"completed"`
	Cancelled       int64 `json:"cancelled"`
	PendingFollowUp int64 `json:"pendingFollowUp"`
}

func toFollowUpResponses(entries []adoptionrecord.FollowUp) []FollowUpResponse {
	out := make([]FollowUpResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FollowUpResponse{
			ID:               e.ID,
			Date:             e.Date,
			Content:          e.Content,
			Operator:         e.Operator,
			NextFollowUpDate: e.NextFollowUpDate,
		})
	}
	return out
}

func toRecordResponse(r *adoptionrecord.Record) *RecordResponse {
	return &RecordResponse{
		ID:                    r.ID(),
		AdoptionApplicationID: r.AdoptionApplicationID(),
		RecordNumber:          r.RecordNumber(),
		PetID:                 r.PetID(),
		PetName:               r.PetName(),
		PetBreed:              r.PetBreed(),
		PetImage:              r.PetImage(),
		AdopterID:             r.AdopterID(),
		AdopterName:           r.AdopterName(),
		AdopterPhone:          r.AdopterPhone(),
		AdopterEmail:          r.AdopterEmail(),
		AdopterAddress:        r.AdopterAddress(),
		AdoptionDate:          r.AdoptionDate(),
		AgreementNumber:       r.AgreementNumber(),
		Status:                r.Status().String(),
		FollowUps:             toFollowUpResponses(r.FollowUps()),
		LastFollowUpDate:      r.LastFollowUpDate(),
		NextFollowUpDate:      r.NextFollowUpDate(),
		Remarks:               r.Remarks(),
		CreatedBy:             r.CreatedBy(),
		UpdatedBy:             r.UpdatedBy(),
		CreateTime:            r.CreatedAt(),
		UpdateTime:            r.UpdatedAt(),
	}
}

func toRecordResponses(records []*adoptionrecord.Record) []*RecordResponse {
	out := make([]*RecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toRecordResponse(r))
	}
	return out
}
