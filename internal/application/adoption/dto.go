package adoption

import (
	"time"

	"github.com/shelterhq/pawhaven/internal/domain/adoption"
)

// CreateAdoptionRequest represents a new adoption application
type CreateAdoptionRequest struct {
	PetID            uint     `json:"petId" binding:"required"`
	PetName          string   `json:"petName" binding:"required,min=1,max=100"`
	ApplicantName    string   `json:"applicantName" binding:"required,min=1,max=100"`
	ApplicantPhone   string   `json:"applicantPhone" binding:"required,min=1,max=30"`
	ApplicantEmail   string   `json:"applicantEmail" binding:"omitempty,email"`
	ApplicantIDCard  string   `json:"applicantIdCard" binding:"omitempty,max=50"`
	ApplicantAddress string   `json:"applicantAddress" binding:"omitempty,max=300"`
	Experience       *string  `json:"experience,omitempty" binding:"omitempty,max=1000"`
	HousingType      *string  `json:"housingType,omitempty" binding:"omitempty,max=50"`
	HasYard          *bool    `json:"hasYard,omitempty"`
	FamilyMembers    *int     `json:"familyMembers,omitempty" binding:"omitempty,gte=0"`
	WorkHours        *string  `json:"workHours,omitempty" binding:"omitempty,max=100"`
	Remarks          *string  `json:"remarks,omitempty" binding:"omitempty,max=500"`
	ReviewNotes      []string `json:"reviewNotes,omitempty"`
}

// UpdateAdoptionRequest represents a partial update to a pending application
type UpdateAdoptionRequest struct {
	ApplicantName    *string  `json:"applicantName,omitempty" binding:"omitempty,min=1,max=100"`
	ApplicantPhone   *string  `json:"applicantPhone,omitempty" binding:"omitempty,min=1,max=30"`
	ApplicantEmail   *string  `json:"applicantEmail,omitempty" binding:"omitempty,email"`
	ApplicantIDCard  *string  `json:"applicantIdCard,omitempty" binding:"omitempty,max=50"`
	ApplicantAddress *string  `json:"applicantAddress,omitempty" binding:"omitempty,max=300"`
	Experience       *string  `json:"experience,omitempty" binding:"omitempty,max=1000"`
	HousingType      *string  `json:"housingType,omitempty" binding:"omitempty,max=50"`
	HasYard          *bool    `json:"hasYard,omitempty"`
	FamilyMembers    *int     `json:"familyMembers,omitempty" binding:"omitempty,gte=0"`
	WorkHours        *string  `json:"workHours,omitempty" binding:"omitempty,max=100"`
	Remarks          *string  `json:"remarks,omitempty" binding:"omitempty,max=500"`
	ReviewNotes      []string `json:"reviewNotes,omitempty"`
}

// ReviewAdoptionRequest represents the approve/reject decision
type ReviewAdoptionRequest struct {
	Status       string  `json:"status" binding:"required,oneof=approved rejected"`
	Approver     *string `json:"approver,omitempty" binding:"omitempty,max=100"`
	Rejecter     *string `json:"rejecter,omitempty" binding:"omitempty,max=100"`
	RejectReason *string `json:"rejectReason,omitempty" binding:"omitempty,max=500"`
	Remarks      *string `json:"remarks,omitempty" binding:"omitempty,max=500"`
}

// ListAdoptionsQuery carries the list filters parsed from the query string
type ListAdoptionsQuery struct {
	Status        string
	ApplicantName string
	PetName       string
	Page          int
	Limit         int
}

// AdoptionResponse represents an adoption application in API responses
type AdoptionResponse struct {
	ID               uint       `json:"id"`
	PetID            uint       `json:"petId"`
	PetName          string     `json:"petName"`
	ApplicantName    string     `json:"applicantName"`
	ApplicantPhone   string     `json:"applicantPhone"`
	ApplicantEmail   string     `json:"applicantEmail,omitempty"`
	ApplicantIDCard  string     `json:"applicantIdCard,omitempty"`
	ApplicantAddress string     `json:"applicantAddress,omitempty"`
	ApplicationDate  time.Time  `json:"applicationDate"`
	Status           string     `json:"status"`
	ApprovalDate     *time.Time `json:"approvalDate,omitempty"`
	Approver         *string    `json:"approver,omitempty"`
	RejectionDate    *time.Time `json:"rejectionDate,omitempty"`
	Rejecter         *string    `json:"rejecter,omitempty"`
	RejectReason     *string    `json:"rejectReason,omitempty"`
	Remarks          *string    `json:"remarks,omitempty"`
	Experience       *string    `json:"experience,omitempty"`
	HousingType      *string    `json:"housingType,omitempty"`
	HasYard          bool       `json:"hasYard"`
	FamilyMembers    *int       `json:"familyMembers,omitempty"`
	WorkHours        *string    `json:"workHours,omitempty"`
	ReviewNotes      []string   `json:"reviewNotes"`
	CreateTime       time.Time  `json:"createTime"`
	UpdateTime       time.Time  `json:"updateTime"`
}

// AdoptionStatsResponse represents the adoption application statistics
type AdoptionStatsResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

func toAdoptionResponse(a *adoption.Adoption) *AdoptionResponse {
	applicant := a.Applicant()
	return &AdoptionResponse{
		ID:               a.ID(),
		PetID:            a.PetID(),
		PetName:          a.PetName(),
		ApplicantName:    applicant.Name,
		ApplicantPhone:   applicant.Phone,
		ApplicantEmail:   applicant.Email,
		ApplicantIDCard:  applicant.IDCard,
		ApplicantAddress: applicant.Address,
		ApplicationDate:  a.ApplicationDate(),
		Status:           a.Status().String(),
		ApprovalDate:     a.ApprovalDate(),
		Approver:         a.Approver(),
		RejectionDate:    a.RejectionDate(),
		Rejecter:         a.Rejecter(),
		RejectReason:     a.RejectReason(),
		Remarks:          a.Remarks(),
		Experience:       a.Experience(),
		HousingType:      a.HousingType(),
		HasYard:          a.HasYard(),
		FamilyMembers:    a.FamilyMembers(),
		WorkHours:        a.WorkHours(),
		ReviewNotes:      a.ReviewNotes(),
		CreateTime:       a.CreatedAt(),
		UpdateTime:       a.UpdatedAt(),
	}
}

func toAdoptionResponses(apps []*adoption.Adoption) []*AdoptionResponse {
	out := make([]*AdoptionResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, toAdoptionResponse(a))
	}
	return out
}
