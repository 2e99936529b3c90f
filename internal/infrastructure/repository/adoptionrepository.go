package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/adoption"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// AdoptionRepositoryImpl implements the adoption.Repository interface.
type AdoptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdoptionMapper
	logger logger.Interface
}

// NewAdoptionRepository creates a new adoption repository instance.
func NewAdoptionRepository(db *gorm.DB, logger logger.Interface) adoption.Repository {
	return &AdoptionRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdoptionMapper(),
		logger: logger,
	}
}

// Create creates a new adoption application in the database.
func (r *AdoptionRepositoryImpl) Create(ctx context.Context, a *adoption.Adoption) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map adoption entity to model", "error", err)
		return fmt.Errorf("failed to map adoption entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create adoption in database", "error", err)
		return fmt.Errorf("failed to create adoption: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set adoption ID: %w", err)
	}

	r.logger.Infow("adoption application created", "id", model.ID, "pet_id", model.PetID)
	return nil
}

// Update updates an existing application with optimistic locking.
func (r *AdoptionRepositoryImpl) Update(ctx context.Context, a *adoption.Adoption) error {
	model, err := r.mapper.ToModel(a)
	if err != nil {
		r.logger.Errorw("failed to map adoption entity to model", "error", err)
		return fmt.Errorf("failed to map adoption entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.AdoptionModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"applicant_name":    model.ApplicantName,
			"applicant_phone":   model.ApplicantPhone,
			"applicant_email":   model.ApplicantEmail,
			"applicant_id_card": model.ApplicantIDCard,
			"applicant_address": model.ApplicantAddress,
			"status":            model.Status,
			"approval_date":     model.ApprovalDate,
			"approver":          model.Approver,
			"rejection_date":    model.RejectionDate,
			"rejecter":          model.Rejecter,
			"reject_reason":     model.RejectReason,
			"remarks":           model.Remarks,
			"experience":        model.Experience,
			"housing_type":      model.HousingType,
			"has_yard":          model.HasYard,
			"family_members":    model.FamilyMembers,
			"work_hours":        model.WorkHours,
			"review_notes":      model.ReviewNotes,
			"updated_at":        model.UpdatedAt,
			"version":           model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update adoption", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update adoption: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return adoption.ErrVersionConflict
	}

	return nil
}

// Delete deletes an application by ID.
func (r *AdoptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AdoptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete adoption", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete adoption: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return adoption.ErrAdoptionNotFound
	}

	r.logger.Infow("adoption application deleted", "id", id)
	return nil
}

// GetByID retrieves an application by its ID. Returns nil when not found.
func (r *AdoptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*adoption.Adoption, error) {
	var model models.AdoptionModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get adoption by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get adoption: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves applications with optional filters, newest applications first.
func (r *AdoptionRepositoryImpl) List(ctx context.Context, filter adoption.ListFilter) ([]*adoption.Adoption, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdoptionModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.ApplicantName != "" {
		query = query.Where("applicant_name LIKE ?", "%"+filter.ApplicantName+"%")
	}
	if filter.PetName != "" {
		query = query.Where("pet_name LIKE ?", "%"+filter.PetName+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count adoptions", "error", err)
		return nil, 0, fmt.Errorf("failed to count adoptions: %w", err)
	}

	query = query.Order("application_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.AdoptionModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list adoptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list adoptions: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map adoptions: %w", err)
	}

	return entities, total, nil
}

// ListRecent retrieves the latest applications by application date.
func (r *AdoptionRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*adoption.Adoption, error) {
	var modelList []*models.AdoptionModel

	err := r.db.WithContext(ctx).Model(&models.AdoptionModel{}).
		Order("application_date DESC").
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list recent adoptions", "error", err)
		return nil, fmt.Errorf("failed to list recent adoptions: %w", err)
	}

	return r.mapper.ToEntities(modelList)
}

// CountByStatus counts applications with the given status.
func (r *AdoptionRepositoryImpl) CountByStatus(ctx context.Context, status adoption.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdoptionModel{}).
		Where("status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count adoptions by status: %w", err)
	}
	return count, nil
}

// Count counts all applications.
func (r *AdoptionRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdoptionModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count adoptions: %w", err)
	}
	return count, nil
}
