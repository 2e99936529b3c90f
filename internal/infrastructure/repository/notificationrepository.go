package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/notification"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// NotificationRepositoryImpl implements the notification.Repository interface.
type NotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
	logger logger.Interface
}

// NewNotificationRepository creates a new notification repository instance.
func NewNotificationRepository(db *gorm.DB, logger logger.Interface) notification.Repository {
	return &NotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
		logger: logger,
	}
}

// Create creates a new notification in the database.
func (r *NotificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		r.logger.Errorw("failed to map notification entity to model", "error", err)
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create notification in database", "error", err)
		return fmt.Errorf("failed to create notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

// Update updates an existing notification with optimistic locking.
func (r *NotificationRepositoryImpl) Update(ctx context.Context, n *notification.Notification) error {
	model, err := r.mapper.ToModel(n)
	if err != nil {
		r.logger.Errorw("failed to map notification entity to model", "error", err)
		return fmt.Errorf("failed to map notification entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"type":        model.Type,
			"title":       model.Title,
			"content":     model.Content,
			"target_id":   model.TargetID,
			"target_type": model.TargetType,
			"is_read":     model.IsRead,
			"updated_at":  model.UpdatedAt,
			"version":     model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update notification", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return notification.ErrVersionConflict
	}

	return nil
}

// Delete deletes a notification by ID.
func (r *NotificationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.NotificationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete notification", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return notification.ErrNotificationNotFound
	}

	return nil
}

// GetByID retrieves a notification by ID. Returns nil when not found.
func (r *NotificationRepositoryImpl) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	var model models.NotificationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get notification by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves notifications with optional filters, newest first.
func (r *NotificationRepositoryImpl) List(ctx context.Context, filter notification.ListFilter) ([]*notification.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.NotificationModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count notifications", "error", err)
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.NotificationModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list notifications", "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map notifications: %w", err)
	}

	return entities, total, nil
}

// CountUnread counts unread notifications.
func (r *NotificationRepositoryImpl) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("is_read = ?", false).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAllRead marks every unread notification as read and returns the number
// of rows updated.
func (r *NotificationRepositoryImpl) MarkAllRead(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.NotificationModel{}).
		Where("is_read = ?", false).
		UpdateColumn("is_read", true)
	if result.Error != nil {
		r.logger.Errorw("failed to mark notifications read", "error", result.Error)
		return 0, fmt.Errorf("failed to mark notifications read: %w", result.Error)
	}

	return result.RowsAffected, nil
}
