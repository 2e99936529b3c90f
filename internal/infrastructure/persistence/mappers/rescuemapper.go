package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/rescue"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// RescueMapper handles the conversion between domain entities and persistence models.
type RescueMapper interface {
	ToEntity(model *models.RescueModel) (*rescue.Rescue, error)
	ToModel(entity *rescue.Rescue) (*models.RescueModel, error)
	ToEntities(models []*models.RescueModel) ([]*rescue.Rescue, error)
}

// RescueMapperImpl is the concrete implementation of RescueMapper.
type RescueMapperImpl struct{}

// NewRescueMapper creates a new rescue mapper.
func NewRescueMapper() RescueMapper {
	return &RescueMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *RescueMapperImpl) ToEntity(model *models.RescueModel) (*rescue.Rescue, error) {
	if model == nil {
		return nil, nil
	}

	images, err := unmarshalJSON[[]string](model.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rescue images: %w", err)
	}

	entity, err := rescue.ReconstructRescue(
		model.ID,
		model.PetID,
		model.PetName,
		model.RescueDate,
		model.RescueLocation,
		model.Rescuer,
		model.RescueType,
		model.Description,
		model.HealthCondition,
		model.ImmediateAction,
		images,
		model.VideoURL,
		model.Cost,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct rescue entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *RescueMapperImpl) ToModel(entity *rescue.Rescue) (*models.RescueModel, error) {
	if entity == nil {
		return nil, nil
	}

	images, err := marshalJSON(emptyIfNil(entity.Images()))
	if err != nil {
		return nil, err
	}

	return &models.RescueModel{
		ID:              entity.ID(),
		PetID:           entity.PetID(),
		PetName:         entity.PetName(),
		RescueDate:      entity.RescueDate(),
		RescueLocation:  entity.RescueLocation(),
		Rescuer:         entity.Rescuer(),
		RescueType:      entity.RescueType(),
		Description:     entity.Description(),
		HealthCondition: entity.HealthCondition(),
		ImmediateAction: entity.ImmediateAction(),
		Images:          images,
		VideoURL:        entity.VideoURL(),
		Cost:            entity.Cost(),
		Notes:           entity.Notes(),
		CreatedAt:       entity.CreatedAt(),
		UpdatedAt:       entity.UpdatedAt(),
		Version:         entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *RescueMapperImpl) ToEntities(modelList []*models.RescueModel) ([]*rescue.Rescue, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.RescueModel) uint { return model.ID })
}
