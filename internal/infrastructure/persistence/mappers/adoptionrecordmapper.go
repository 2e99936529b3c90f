package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/adoptionrecord"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// AdoptionRecordMapper handles the conversion between domain entities and persistence models.
type AdoptionRecordMapper interface {
	ToEntity(model *models.AdoptionRecordModel) (*adoptionrecord.Record, error)
	ToModel(entity *adoptionrecord.Record) (*models.AdoptionRecordModel, error)
	ToEntities(models []*models.AdoptionRecordModel) ([]*adoptionrecord.Record, error)
}

// AdoptionRecordMapperImpl is the concrete implementation of AdoptionRecordMapper.
type AdoptionRecordMapperImpl struct{}

// NewAdoptionRecordMapper creates a new adoption record mapper.
func NewAdoptionRecordMapper() AdoptionRecordMapper {
	return &AdoptionRecordMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *AdoptionRecordMapperImpl) ToEntity(model *models.AdoptionRecordModel) (*adoptionrecord.Record, error) {
	if model == nil {
		return nil, nil
	}

	followUps, err := unmarshalJSON[[]adoptionrecord.FollowUp](model.FollowUps)
	if err != nil {
		return nil, fmt.Errorf("failed to decode follow-ups: %w", err)
	}

	entity, err := adoptionrecord.ReconstructRecord(
		model.ID,
		model.AdoptionApplicationID,
		model.RecordNumber,
		model.PetID,
		model.PetName,
		model.PetBreed,
		model.PetImage,
		model.AdopterID,
		model.AdopterName,
		model.AdopterPhone,
		model.AdopterEmail,
		model.AdopterAddress,
		model.AdoptionDate,
		model.AgreementNumber,
		adoptionrecord.Status(model.Status),
		followUps,
		model.LastFollowUpDate,
		model.NextFollowUpDate,
		model.Remarks,
		model.CreatedBy,
		model.UpdatedBy,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct adoption record entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *AdoptionRecordMapperImpl) ToModel(entity *adoptionrecord.Record) (*models.AdoptionRecordModel, error) {
	if entity == nil {
		return nil, nil
	}

	followUps, err := marshalJSON(emptyIfNil(entity.FollowUps()))
	if err != nil {
		return nil, err
	}

	return &models.AdoptionRecordModel{
		ID:                    entity.ID(),
		AdoptionApplicationID: entity.AdoptionApplicationID(),
		RecordNumber:          entity.RecordNumber(),
		PetID:                 entity.PetID(),
		PetName:               entity.PetName(),
		PetBreed:              entity.PetBreed(),
		PetImage:              entity.PetImage(),
		AdopterID:             entity.AdopterID(),
		AdopterName:           entity.AdopterName(),
		AdopterPhone:          entity.AdopterPhone(),
		AdopterEmail:          entity.AdopterEmail(),
		AdopterAddress:        entity.AdopterAddress(),
		AdoptionDate:          entity.AdoptionDate(),
		AgreementNumber:       entity.AgreementNumber(),
		Status:                entity.Status().String(),
		FollowUps:             followUps,
		LastFollowUpDate:      entity.LastFollowUpDate(),
		NextFollowUpDate:      entity.NextFollowUpDate(),
		Remarks:               entity.Remarks(),
		CreatedBy:             entity.CreatedBy(),
		UpdatedBy:             entity.UpdatedBy(),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
		Version:               entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *AdoptionRecordMapperImpl) ToEntities(modelList []*models.AdoptionRecordModel) ([]*adoptionrecord.Record, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.AdoptionRecordModel) string { return model.ID })
}
