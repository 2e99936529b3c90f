package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/rescue"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// RescueRepositoryImpl implements the rescue.Repository interface.
type RescueRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RescueMapper
	logger logger.Interface
}

// NewRescueRepository creates a new rescue repository instance.
func NewRescueRepository(db *gorm.DB, logger logger.Interface) rescue.Repository {
	return &RescueRepositoryImpl{
		db:     db,
		mapper: mappers.NewRescueMapper(),
		logger: logger,
	}
}

// Create creates a new rescue record in the database.
func (r *RescueRepositoryImpl) Create(ctx context.Context, res *rescue.Rescue) error {
	model, err := r.mapper.ToModel(res)
	if err != nil {
		r.logger.Errorw("failed to map rescue entity to model", "error", err)
		return fmt.Errorf("failed to map rescue entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create rescue in database", "error", err)
		return fmt.Errorf("failed to create rescue: %w", err)
	}

	if err := res.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set rescue ID: %w", err)
	}

	r.logger.Infow("rescue created", "id", model.ID, "pet_name", model.PetName)
	return nil
}

// Update updates an existing rescue record with optimistic locking.
func (r *RescueRepositoryImpl) Update(ctx context.Context, res *rescue.Rescue) error {
	model, err := r.mapper.ToModel(res)
	if err != nil {
		r.logger.Errorw("failed to map rescue entity to model", "error", err)
		return fmt.Errorf("failed to map rescue entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.RescueModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"pet_name":         model.PetName,
			"rescue_date":      model.RescueDate,
			"rescue_location":  model.RescueLocation,
			"rescuer":          model.Rescuer,
			"rescue_type":      model.RescueType,
			"description":      model.Description,
			"health_condition": model.HealthCondition,
			"immediate_action": model.ImmediateAction,
			"images":           model.Images,
			"video_url":        model.VideoURL,
			"cost":             model.Cost,
			"notes":            model.Notes,
			"updated_at":       model.UpdatedAt,
			"version":          model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update rescue", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update rescue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return rescue.ErrVersionConflict
	}

	return nil
}

// Delete deletes a rescue record by ID.
func (r *RescueRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.RescueModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete rescue", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete rescue: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return rescue.ErrRescueNotFound
	}

	r.logger.Infow("rescue deleted", "id", id)
	return nil
}

// GetByID retrieves a rescue record by ID. Returns nil when not found.
func (r *RescueRepositoryImpl) GetByID(ctx context.Context, id uint) (*rescue.Rescue, error) {
	var model models.RescueModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get rescue by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rescue: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves rescue records with optional filters, newest first.
func (r *RescueRepositoryImpl) List(ctx context.Context, filter rescue.ListFilter) ([]*rescue.Rescue, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.RescueModel{})

	if filter.Rescuer != "" {
		query = query.Where("rescuer LIKE ?", "%"+filter.Rescuer+"%")
	}
	if filter.RescueType != nil {
		query = query.Where("rescue_type = ?", *filter.RescueType)
	}
	if filter.HealthCondition != nil {
		query = query.Where("health_condition = ?", *filter.HealthCondition)
	}
	if filter.RescueLocation != "" {
		query = query.Where("rescue_location LIKE ?", "%"+filter.RescueLocation+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count rescues", "error", err)
		return nil, 0, fmt.Errorf("failed to count rescues: %w", err)
	}

	query = query.Order("rescue_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.RescueModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list rescues", "error", err)
		return nil, 0, fmt.Errorf("failed to list rescues: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map rescues: %w", err)
	}

	return entities, total, nil
}

// CountByHealthCondition counts rescues with the given health condition.
func (r *RescueRepositoryImpl) CountByHealthCondition(ctx context.Context, condition string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.RescueModel{}).
		Where("health_condition = ?", condition).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count rescues by health condition: %w", err)
	}
	return count, nil
}

// Count counts all rescue records.
func (r *RescueRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RescueModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rescues: %w", err)
	}
	return count, nil
}

// SumCost returns the total cost across all rescues.
func (r *RescueRepositoryImpl) SumCost(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.RescueModel{}).
		Select("COALESCE(SUM(cost), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum rescue costs: %w", err)
	}
	return total, nil
}
