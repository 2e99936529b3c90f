package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/activity"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// ActivityMapper handles the conversion between domain entities and persistence models.
type ActivityMapper interface {
	ToEntity(model *models.ActivityModel) (*activity.Activity, error)
	ToModel(entity *activity.Activity) (*models.ActivityModel, error)
	ToEntities(models []*models.ActivityModel) ([]*activity.Activity, error)
}

// ActivityMapperImpl is the concrete implementation of ActivityMapper.
type ActivityMapperImpl struct{}

// NewActivityMapper creates a new activity mapper.
func NewActivityMapper() ActivityMapper {
	return &ActivityMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *ActivityMapperImpl) ToEntity(model *models.ActivityModel) (*activity.Activity, error) {
	if model == nil {
		return nil, nil
	}

	images, err := unmarshalJSON[[]string](model.Images)
	if err != nil {
		return nil, fmt.Errorf("failed to decode activity images: %w", err)
	}
	tags, err := unmarshalJSON[[]string](model.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to decode activity tags: %w", err)
	}

	entity, err := activity.ReconstructActivity(
		model.ID,
		model.Title,
		activity.ActivityType(model.Type),
		model.StartDate,
		model.EndDate,
		model.Location,
		model.Description,
		model.ParticipantLimit,
		model.ParticipantCount,
		activity.Status(model.Status),
		model.Organizer,
		model.Requirements,
		images,
		tags,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct activity entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *ActivityMapperImpl) ToModel(entity *activity.Activity) (*models.ActivityModel, error) {
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

	return &models.ActivityModel{
		ID:               entity.ID(),
		Title:            entity.Title(),
		Type:             entity.Type().String(),
		StartDate:        entity.StartDate(),
		EndDate:          entity.EndDate(),
		Location:         entity.Location(),
		Description:      entity.Description(),
		ParticipantLimit: entity.ParticipantLimit(),
		ParticipantCount: entity.ParticipantCount(),
		Status:           entity.Status().String(),
		Organizer:        entity.Organizer(),
		Requirements:     entity.Requirements(),
		Images:           images,
		Tags:             tags,
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
		Version:          entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *ActivityMapperImpl) ToEntities(modelList []*models.ActivityModel) ([]*activity.Activity, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.ActivityModel) uint { return model.ID })
}
