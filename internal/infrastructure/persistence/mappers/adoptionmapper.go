package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/adoption"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// AdoptionMapper handles the conversion between domain entities and persistence models.
type AdoptionMapper interface {
	ToEntity(model *models.AdoptionModel) (*adoption.Adoption, error)
	ToModel(entity *adoption.Adoption) (*models.AdoptionModel, error)
	ToEntities(models []*models.AdoptionModel) ([]*adoption.Adoption, error)
}

// AdoptionMapperImpl is the concrete implementation of AdoptionMapper.
type AdoptionMapperImpl struct{}

// NewAdoptionMapper creates a new adoption mapper.
func NewAdoptionMapper() AdoptionMapper {
	return &AdoptionMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *AdoptionMapperImpl) ToEntity(model *models.AdoptionModel) (*adoption.Adoption, error) {
	if model == nil {
		return nil, nil
	}

	reviewNotes, err := unmarshalJSON[[]string](model.ReviewNotes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode review notes: %w", err)
	}

	entity, err := adoption.ReconstructAdoption(
		model.ID,
		model.PetID,
		model.PetName,
		adoption.Applicant{
			Name:    model.ApplicantName,
			Phone:   model.ApplicantPhone,
			Email:   model.ApplicantEmail,
			IDCard:  model.ApplicantIDCard,
			Address: model.ApplicantAddress,
		},
		model.ApplicationDate,
		adoption.Status(model.Status),
		model.ApprovalDate,
		model.Approver,
		model.RejectionDate,
		model.Rejecter,
		model.RejectReason,
		model.Remarks,
		model.Experience,
		model.HousingType,
		model.HasYard,
		model.FamilyMembers,
		model.WorkHours,
		reviewNotes,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct adoption entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *AdoptionMapperImpl) ToModel(entity *adoption.Adoption) (*models.AdoptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	reviewNotes, err := marshalJSON(emptyIfNil(entity.ReviewNotes()))
	if err != nil {
		return nil, err
	}

	applicant := entity.Applicant()
	return &models.AdoptionModel{
		ID:               entity.ID(),
		PetID:            entity.PetID(),
		PetName:          entity.PetName(),
		ApplicantName:    applicant.Name,
		ApplicantPhone:   applicant.Phone,
		ApplicantEmail:   applicant.Email,
		ApplicantIDCard:  applicant.IDCard,
		ApplicantAddress: applicant.Address,
		ApplicationDate:  entity.ApplicationDate(),
		Status:           entity.Status().String(),
		ApprovalDate:     entity.ApprovalDate(),
		Approver:         entity.Approver(),
		RejectionDate:    entity.RejectionDate(),
		Rejecter:         entity.Rejecter(),
		RejectReason:     entity.RejectReason(),
		Remarks:          entity.Remarks(),
		Experience:       entity.Experience(),
		HousingType:      entity.HousingType(),
		HasYard:          entity.HasYard(),
		FamilyMembers:    entity.FamilyMembers(),
		WorkHours:        entity.WorkHours(),
		ReviewNotes:      reviewNotes,
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
		Version:          entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *AdoptionMapperImpl) ToEntities(modelList []*models.AdoptionModel) ([]*adoption.Adoption, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AdoptionModel) uint { return model.ID })
}
