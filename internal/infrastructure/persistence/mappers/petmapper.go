package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// PetMapper handles the conversion between domain entities and persistence models.
type PetMapper interface {
	ToEntity(model *models.PetModel) (*pet.Pet, error)
	ToModel(entity *pet.Pet) (*models.PetModel, error)
	ToEntities(models []*models.PetModel) ([]*pet.Pet, error)
}

// PetMapperImpl is the concrete implementation of PetMapper.
type PetMapperImpl struct{}

// NewPetMapper creates a new pet mapper.
func NewPetMapper() PetMapper {
	return &PetMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *PetMapperImpl) ToEntity(model *models.PetModel) (*pet.Pet, error) {
	if model == nil {
		return nil, nil
	}

	images, err := unmarshalJSON[[]string](model.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pet images: %w", err)
	}
	tags, err := unmarshalJSON[[]string](model.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to decode pet tags: %w", err)
	}

	entity, err := pet.ReconstructPet(
		model.ID,
		model.Name,
		pet.PetType(model.Type),
		model.Breed,
		model.Age,
		pet.Gender(model.Gender),
		model.Weight,
		model.Color,
		pet.HealthStatus(model.HealthStatus),
		pet.AdoptionStatus(model.AdoptionStatus),
		model.Description,
		images,
		model.Location,
		model.RescueDate,
		model.Rescuer,
		tags,
		model.ViewCount,
		model.FavoriteCount,
		model.AdoptedBy,
		model.AdoptedDate,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct pet entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *PetMapperImpl) ToModel(entity *pet.Pet) (*models.PetModel, error) {
	if entity == nil {
		return nil, nil
	}

	images, err := marshalJSON(emptyIfNil(entity.Images()))
	if err != nil {
		return nil, err
	}
	tags, err := marshalJSON(emptyIfNil(entity.Tags()))
	if err != nil {
		return nil, err
	}

	return &models.PetModel{
		ID:             entity.ID(),
		Name:           entity.Name(),
		Type:           entity.Type().String(),
		Breed:          entity.Breed(),
		Age:            entity.Age(),
		Gender:         entity.Gender().String(),
		Weight:         entity.Weight(),
		Color:          entity.Color(),
		HealthStatus:   entity.HealthStatus().String(),
		AdoptionStatus: entity.AdoptionStatus().String(),
		Description:    entity.Description(),
		Images:         images,
		Location:       entity.Location(),
		RescueDate:     entity.RescueDate(),
		Rescuer:        entity.Rescuer(),
		Tags:           tags,
		ViewCount:      entity.ViewCount(),
		FavoriteCount:  entity.FavoriteCount(),
		AdoptedBy:      entity.AdoptedBy(),
		AdoptedDate:    entity.AdoptedDate(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
		Version:        entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *PetMapperImpl) ToEntities(modelList []*models.PetModel) ([]*pet.Pet, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.PetModel) uint { return model.ID })
}
