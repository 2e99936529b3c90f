package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// VolunteerRepositoryImpl implements the volunteer.Repository interface.
type VolunteerRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.VolunteerMapper
	logger logger.Interface
}

// NewVolunteerRepository creates a new volunteer repository instance.
func NewVolunteerRepository(db *gorm.DB, logger logger.Interface) volunteer.Repository {
	return &VolunteerRepositoryImpl{
		db:     db,
		mapper: mappers.NewVolunteerMapper(),
		logger: logger,
	}
}

// Create creates a new volunteer in the database.
func (r *VolunteerRepositoryImpl) Create(ctx context.Context, v *volunteer.Volunteer) error {
	model, err := r.mapper.ToModel(v)
	if err != nil {
		r.logger.Errorw("failed to map volunteer entity to model", "error", err)
		return fmt.Errorf("failed to map volunteer entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create volunteer in database", "error", err)
		return fmt.Errorf("failed to create volunteer: %w", err)
	}

	if err := v.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set volunteer ID: %w", err)
	}

	r.logger.Infow("volunteer created", "id", model.ID, "name", model.Name)
	return nil
}

// Update updates an existing volunteer with optimistic locking.
func (r *VolunteerRepositoryImpl) Update(ctx context.Context, v *volunteer.Volunteer) error {
	model, err := r.mapper.ToModel(v)
	if err != nil {
		r.logger.Errorw("failed to map volunteer entity to model", "error", err)
		return fmt.Errorf("failed to map volunteer entity: %w", err)
	}

	// Hour and participation counters move only through AddHours
	result := r.db.WithContext(ctx).Model(&models.VolunteerModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"name":           model.Name,
			"phone":          model.Phone,
			"email":          model.Email,
			"age":            model.Age,
			"occupation":     model.Occupation,
			"experience":     model.Experience,
			"available_time": model.AvailableTime,
			"status":         model.Status,
			"skills":         model.Skills,
			"avatar":         model.Avatar,
			"address":        model.Address,
			"updated_at":     model.UpdatedAt,
			"version":        model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update volunteer", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update volunteer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return volunteer.ErrVersionConflict
	}

	return nil
}

// Delete deletes a volunteer by ID.
func (r *VolunteerRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.VolunteerModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete volunteer", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete volunteer: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return volunteer.ErrVolunteerNotFound
	}

	r.logger.Infow("volunteer deleted", "id", id)
	return nil
}

// GetByID retrieves a volunteer by ID. Returns nil when not found.
func (r *VolunteerRepositoryImpl) GetByID(ctx context.Context, id uint) (*volunteer.Volunteer, error) {
	var model models.VolunteerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get volunteer by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves volunteers with optional filters, newest joiners first.
func (r *VolunteerRepositoryImpl) List(ctx context.Context, filter volunteer.ListFilter) ([]*volunteer.Volunteer, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.VolunteerModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.Skills != "" {
		query = query.Where("skills LIKE ?", "%"+filter.Skills+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count volunteers", "error", err)
		return nil, 0, fmt.Errorf("failed to count volunteers: %w", err)
	}

	query = query.Order("join_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.VolunteerModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list volunteers", "error", err)
		return nil, 0, fmt.Errorf("failed to list volunteers: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map volunteers: %w", err)
	}

	return entities, total, nil
}

// AddHours atomically adds service hours and bumps the participation counter
// in a single statement.
func (r *VolunteerRepositoryImpl) AddHours(ctx context.Context, id uint, hours float64) error {
	result := r.db.WithContext(ctx).Model(&models.VolunteerModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_hours":             gorm.Expr("total_hours + ?", hours),
			"activities_participated": gorm.Expr("activities_participated + ?", 1),
		})

	if result.Error != nil {
		r.logger.Errorw("failed to add volunteer hours", "id", id, "error", result.Error)
		return fmt.Errorf("failed to add volunteer hours: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return volunteer.ErrVolunteerNotFound
	}
	return nil
}

// CountByStatus counts volunteers with the given status.
func (r *VolunteerRepositoryImpl) CountByStatus(ctx context.Context, status volunteer.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.VolunteerModel{}).
		Where("status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count volunteers by status: %w", err)
	}
	return count, nil
}

// Count counts all volunteers.
func (r *VolunteerRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.VolunteerModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count volunteers: %w", err)
	}
	return count, nil
}

// SumTotalHours returns the total service hours across all volunteers.
func (r *VolunteerRepositoryImpl) SumTotalHours(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.VolunteerModel{}).
		Select("COALESCE(SUM(total_hours), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum volunteer hours: %w", err)
	}
	return total, nil
}
