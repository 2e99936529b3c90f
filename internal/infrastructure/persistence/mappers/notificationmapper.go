package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/notification"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// NotificationMapper handles the conversion between domain entities and persistence models.
type NotificationMapper interface {
	ToEntity(model *models.NotificationModel) (*notification.Notification, error)
	ToModel(entity *notification.Notification) (*models.NotificationModel, error)
	ToEntities(models []*models.NotificationModel) ([]*notification.Notification, error)
}

// NotificationMapperImpl is the concrete implementation of NotificationMapper.
type NotificationMapperImpl struct{}

// NewNotificationMapper creates a new notification mapper.
func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *NotificationMapperImpl) ToEntity(model *models.NotificationModel) (*notification.Notification, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := notification.ReconstructNotification(
		model.ID,
		notification.NotificationType(model.Type),
		model.Title,
		model.Content,
		model.TargetID,
		model.TargetType,
		model.IsRead,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct notification entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *NotificationMapperImpl) ToModel(entity *notification.Notification) (*models.NotificationModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.NotificationModel{
		ID:         entity.ID(),
		Type:       entity.Type().String(),
		Title:      entity.Title(),
		Content:    entity.Content(),
		TargetID:   entity.TargetID(),
		TargetType: entity.TargetType(),
		IsRead:     entity.IsRead(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
		Version:    entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *NotificationMapperImpl) ToEntities(modelList []*models.NotificationModel) ([]*notification.Notification, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.NotificationModel) uint { return model.ID })
}
