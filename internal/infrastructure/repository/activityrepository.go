package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/activity"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// ActivityRepositoryImpl implements the activity.Repository interface.
type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ActivityMapper
	logger logger.Interface
}

// NewActivityRepository creates a new activity repository instance.
func NewActivityRepository(db *gorm.DB, logger logger.Interface) activity.Repository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mappers.NewActivityMapper(),
		logger: logger,
	}
}

// Create creates a new activity in the database.
func (r *ActivityRepositoryImpl) Create(ctx context.Context, a *activity.Activity) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map activity entity to model", "error", err)
		return fmt.Errorf("failed to map activity entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create activity in database", "error", err)
		return fmt.Errorf("failed to create activity: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set activity ID: %w", err)
	}

	r.logger.Infow("activity created", "id", model.ID, "title", model.Title)
	return nil
}

// Update updates an existing activity with optimistic locking.
func (r *ActivityRepositoryImpl) Update(ctx context.Context, a *activity.Activity) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map activity entity to model", "error", err)
		return fmt.Errorf("failed to map activity entity: %w", err)
	}

	// The participant counter moves only through the atomic methods
	result := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"title":             model.Title,
			"type":              model.Type,
			"start_date":        model.StartDate,
			"end_date":          model.EndDate,
			"location":          model.Location,
			"description":       model.Description,
			"participant_limit": model.ParticipantLimit,
			"status":            model.Status,
			"organizer":         model.Organizer,
			"requirements":      model.Requirements,
			"images":            model.Images,
			"tags":              model.Tags,
			"updated_at":        model.UpdatedAt,
			"version":           model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update activity", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update activity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return activity.ErrVersionConflict
	}

	return nil
}

// Delete deletes an activity by ID.
func (r *ActivityRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ActivityModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete activity", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return activity.ErrActivityNotFound
	}

	r.logger.Infow("activity deleted", "id", id)
	return nil
}

// GetByID retrieves an activity by ID. Returns nil when not found.
func (r *ActivityRepositoryImpl) GetByID(ctx context.Context, id uint) (*activity.Activity, error) {
	var model models.ActivityModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get activity by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves activities with optional filters, latest start date first.
func (r *ActivityRepositoryImpl) List(ctx context.Context, filter activity.ListFilter) ([]*activity.Activity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count activities", "error", err)
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query = query.Order("start_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.ActivityModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list activities", "error", err)
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map activities: %w", err)
	}

	return entities, total, nil
}

// IncrementParticipantCount atomically increments the participant counter.
func (r *ActivityRepositoryImpl) IncrementParticipantCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("id = ?", id).
		UpdateColumn("participant_count", gorm.Expr("participant_count + ?", 1))

	if result.Error != nil {
		r.logger.Errorw("failed to increment participant count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment participant count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return activity.ErrActivityNotFound
	}
	return nil
}

// DecrementParticipantCount atomically decrements the participant counter,
// clamped at zero.
func (r *ActivityRepositoryImpl) DecrementParticipantCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("id = ?", id).
		UpdateColumn("participant_count", gorm.Expr("CASE WHEN participant_count > 0 THEN participant_count - 1 ELSE 0 END"))

	if result.Error != nil {
		r.logger.Errorw("failed to decrement participant count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to decrement participant count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return activity.ErrActivityNotFound
	}
	return nil
}

// CountByStatus counts activities with the given status.
func (r *ActivityRepositoryImpl) CountByStatus(ctx context.Context, status activity.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count activities by status: %w", err)
	}
	return count, nil
}

// Count counts all activities.
func (r *ActivityRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}
