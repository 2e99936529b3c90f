package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// VolunteerMapper handles the conversion between domain entities and persistence models.
type VolunteerMapper interface {
	ToEntity(model *models.VolunteerModel) (*volunteer.Volunteer, error)
	ToModel(entity *volunteer.Volunteer) (*models.VolunteerModel, error)
	ToEntities(models []*models.VolunteerModel) ([]*volunteer.Volunteer, error)
}

// VolunteerMapperImpl is the concrete implementation of VolunteerMapper.
type VolunteerMapperImpl struct{}

// NewVolunteerMapper creates a new volunteer mapper.
func NewVolunteerMapper() VolunteerMapper {
	return &VolunteerMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *VolunteerMapperImpl) ToEntity(model *models.VolunteerModel) (*volunteer.Volunteer, error) {
	if model == nil {
		return nil, nil
	}

	skills, err := unmarshalJSON[[]string](model.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to decode volunteer skills: %w", err)
	}

	entity, err := volunteer.ReconstructVolunteer(
		model.ID,
		model.Name,
		model.Phone,
		model.Email,
		model.Age,
		model.Occupation,
		model.Experience,
		model.AvailableTime,
		volunteer.Status(model.Status),
		model.JoinDate,
		model.ActivitiesParticipated,
		model.TotalHours,
		skills,
		model.Avatar,
		model.Address,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct volunteer entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *VolunteerMapperImpl) ToModel(entity *volunteer.Volunteer) (*models.VolunteerModel, error) {
	if entity == nil {
		return nil, nil
	}

	skills, err := marshalJSON(emptyIfNil(entity.Skills()))
	if err != nil {
		return nil, err
	}

	return &models.VolunteerModel{
		ID:                     entity.ID(),
		Name:                   entity.Name(),
		Phone:                  entity.Phone(),
		Email:                  entity.Email(),
		Age:                    entity.Age(),
		Occupation:             entity.Occupation(),
		Experience:             entity.Experience(),
		AvailableTime:          entity.AvailableTime(),
		Status:                 entity.Status().String(),
		JoinDate:               entity.JoinDate(),
		ActivitiesParticipated: entity.ActivitiesParticipated(),
		TotalHours:             entity.TotalHours(),
		Skills:                 skills,
		Avatar:                 entity.Avatar(),
		Address:                entity.Address(),
		CreatedAt:              entity.CreatedAt(),
		UpdatedAt:              entity.UpdatedAt(),
		Version:                entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *VolunteerMapperImpl) ToEntities(modelList []*models.VolunteerModel) ([]*volunteer.Volunteer, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.VolunteerModel) uint { return model.ID })
}
