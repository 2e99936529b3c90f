package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// PetRepositoryImpl implements the pet.Repository interface.
type PetRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PetMapper
	logger logger.Interface
}

// NewPetRepository creates a new pet repository instance.
func NewPetRepository(db *gorm.DB, logger logger.Interface) pet.Repository {
	return &PetRepositoryImpl{
		db:     db,
		mapper: mappers.NewPetMapper(),
		logger: logger,
	}
}

// Create creates a new pet in the database.
func (r *PetRepositoryImpl) Create(ctx context.Context, p *pet.Pet) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map pet entity to model", "error", err)
		return fmt.Errorf("failed to map pet entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create pet in database", "error", err)
		return fmt.Errorf("failed to create pet: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set pet ID: %w", err)
	}

	r.logger.Infow("pet created", "id", model.ID, "name", model.Name)
	return nil
}

// Update updates an existing pet with optimistic locking.
func (r *PetRepositoryImpl) Update(ctx context.Context, p *pet.Pet) error {
	model, err := r.mapper.ToModel(p)
	if err != nil {
		r.logger.Errorw("failed to map pet entity to model", "error", err)
		return fmt.Errorf("failed to map pet entity: %w", err)
	}

	// Counters are excluded here, they only move through the atomic
	// increment methods
	result := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"name":            model.Name,
			"type":            model.Type,
			"breed":           model.Breed,
			"age":             model.Age,
			"gender":          model.Gender,
			"weight":          model.Weight,
			"color":           model.Color,
			"health_status":   model.HealthStatus,
			"adoption_status": model.AdoptionStatus,
			"description":     model.Description,
			"images":          model.Images,
			"location":        model.Location,
			"rescue_date":     model.RescueDate,
			"rescuer":         model.Rescuer,
			"tags":            model.Tags,
			"adopted_by":      model.AdoptedBy,
			"adopted_date":    model.AdoptedDate,
			"updated_at":      model.UpdatedAt,
			"version":         model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update pet", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update pet: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return pet.ErrVersionConflict
	}

	return nil
}

// Delete deletes a pet by ID.
func (r *PetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PetModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete pet", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete pet: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return pet.ErrPetNotFound
	}

	r.logger.Infow("pet deleted", "id", id)
	return nil
}

// GetByID retrieves a pet by its ID. Returns nil when not found.
func (r *PetRepositoryImpl) GetByID(ctx context.Context, id uint) (*pet.Pet, error) {
	var model models.PetModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get pet by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves pets with optional filters, newest first.
func (r *PetRepositoryImpl) List(ctx context.Context, filter pet.ListFilter) ([]*pet.Pet, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PetModel{})

	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.Gender != nil {
		query = query.Where("gender = ?", filter.Gender.String())
	}
	if filter.HealthStatus != nil {
		query = query.Where("health_status = ?", filter.HealthStatus.String())
	}
	if filter.AdoptionStatus != nil {
		query = query.Where("adoption_status = ?", filter.AdoptionStatus.String())
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count pets", "error", err)
		return nil, 0, fmt.Errorf("failed to count pets: %w", err)
	}

	query = query.Order("created_at DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.PetModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list pets", "error", err)
		return nil, 0, fmt.Errorf("failed to list pets: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map pets: %w", err)
	}

	return entities, total, nil
}

// IncrementViewCount atomically increments the view counter.
func (r *PetRepositoryImpl) IncrementViewCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))

	if result.Error != nil {
		r.logger.Errorw("failed to increment pet view count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pet.ErrPetNotFound
	}
	return nil
}

// IncrementFavoriteCount atomically increments the favorite counter.
func (r *PetRepositoryImpl) IncrementFavoriteCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("id = ?", id).
		UpdateColumn("favorite_count", gorm.Expr("favorite_count + ?", 1))

	if result.Error != nil {
		r.logger.Errorw("failed to increment pet favorite count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to increment favorite count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pet.ErrPetNotFound
	}
	return nil
}

// DecrementFavoriteCount atomically decrements the favorite counter,
// clamped at zero.
func (r *PetRepositoryImpl) DecrementFavoriteCount(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("id = ?", id).
		UpdateColumn("favorite_count", gorm.Expr("CASE WHEN favorite_count > 0 THEN favorite_count - 1 ELSE 0 END"))

	if result.Error != nil {
		r.logger.Errorw("failed to decrement pet favorite count", "id", id, "error", result.Error)
		return fmt.Errorf("failed to decrement favorite count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pet.ErrPetNotFound
	}
	return nil
}

// CountByAdoptionStatus counts pets with the given adoption status.
func (r *PetRepositoryImpl) CountByAdoptionStatus(ctx context.Context, status pet.AdoptionStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("adoption_status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pets by adoption status: %w", err)
	}
	return count, nil
}

// CountByHealthStatus counts pets with the given health status.
func (r *PetRepositoryImpl) CountByHealthStatus(ctx context.Context, status pet.HealthStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Where("health_status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pets by health status: %w", err)
	}
	return count, nil
}

// Count counts all pets.
func (r *PetRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PetModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pets: %w", err)
	}
	return count, nil
}

// CountGroupByType returns pet counts grouped by type.
func (r *PetRepositoryImpl) CountGroupByType(ctx context.Context) (map[pet.PetType]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}

	err := r.db.WithContext(ctx).Model(&models.PetModel{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Errorw("failed to count pets by type", "error", err)
		return nil, fmt.Errorf("failed to count pets by type: %w", err)
	}

	counts := make(map[pet.PetType]int64, len(rows))
	for _, row := range rows {
		counts[pet.PetType(row.Type)] = row.Count
	}
	return counts, nil
}
