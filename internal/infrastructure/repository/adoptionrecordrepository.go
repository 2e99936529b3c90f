package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/adoptionrecord"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// AdoptionRecordRepositoryImpl implements the adoptionrecord.Repository interface.
type AdoptionRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AdoptionRecordMapper
	logger logger.Interface
}

// NewAdoptionRecordRepository creates a new adoption record repository instance.
func NewAdoptionRecordRepository(db *gorm.DB, logger logger.Interface) adoptionrecord.Repository {
	return &AdoptionRecordRepositoryImpl{
		db:     db,
		mapper: mappers.NewAdoptionRecordMapper(),
		logger: logger,
	}
}

// Create creates a new adoption record. Unique-constraint collisions on the
// record number surface as ErrRecordNumberTaken so the caller can regenerate.
func (r *AdoptionRecordRepositoryImpl) Create(ctx context.Context, rec *adoptionrecord.Record) error {
	model, err := r.mapper.ToModel(rec)
	if err != nil {
		r.logger.Errorw("failed to map adoption record entity to model", "error", err)
		return fmt.Errorf("failed to map adoption record entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return adoptionrecord.ErrRecordNumberTaken
		}
		r.logger.Errorw("failed to create adoption record in database", "error", err)
		return fmt.Errorf("failed to create adoption record: %w", err)
	}

	r.logger.Infow("adoption record created", "id", model.ID, "record_number", model.RecordNumber)
	return nil
}

// Update updates an existing record with optimistic locking.
func (r *AdoptionRecordRepositoryImpl) Update(ctx context.Context, rec *adoptionrecord.Record) error {
	model, err := r.mapper.ToModel(rec)
	if err != nil {
		r.logger.Errorw("failed to map adoption record entity to model", "error", err)
		return fmt.Errorf("failed to map adoption record entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"pet_name":            model.PetName,
			"pet_breed":           model.PetBreed,
			"pet_image":           model.PetImage,
			"adopter_name":        model.AdopterName,
			"adopter_phone":       model.AdopterPhone,
			"adopter_email":       model.AdopterEmail,
			"adopter_address":     model.AdopterAddress,
			"adoption_date":       model.AdoptionDate,
			"agreement_number":    model.AgreementNumber,
			"status":              model.Status,
			"follow_ups":          model.FollowUps,
			"last_follow_up_date": model.LastFollowUpDate,
			"next_follow_up_date": model.NextFollowUpDate,
			"remarks":             model.Remarks,
			"updated_by":          model.UpdatedBy,
			"updated_at":          model.UpdatedAt,
			"version":             model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update adoption record", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update adoption record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return adoptionrecord.ErrVersionConflict
	}

	return nil
}

// Delete deletes a record by ID.
func (r *AdoptionRecordRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AdoptionRecordModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete adoption record", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete adoption record: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return adoptionrecord.ErrRecordNotFound
	}

	r.logger.Infow("adoption record deleted", "id", id)
	return nil
}

// GetByID retrieves a record by UUID. Returns nil when not found.
func (r *AdoptionRecordRepositoryImpl) GetByID(ctx context.Context, id string) (*adoptionrecord.Record, error) {
	var model models.AdoptionRecordModel

	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get adoption record by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get adoption record: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves records with optional filters, newest adoptions first.
func (r *AdoptionRecordRepositoryImpl) List(ctx context.Context, filter adoptionrecord.ListFilter) ([]*adoptionrecord.Record, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.PetName != "" {
		query = query.Where("pet_name LIKE ?", "%"+filter.PetName+"%")
	}
	if filter.AdopterName != "" {
		query = query.Where("adopter_name LIKE ?", "%"+filter.AdopterName+"%")
	}
	if filter.RecordNumber != "" {
		query = query.Where("record_number = ?", filter.RecordNumber)
	}
	if filter.StartDate != nil {
		query = query.Where("adoption_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("adoption_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count adoption records", "error", err)
		return nil, 0, fmt.Errorf("failed to count adoption records: %w", err)
	}

	query = query.Order("adoption_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.AdoptionRecordModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list adoption records", "error", err)
		return nil, 0, fmt.Errorf("failed to list adoption records: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map adoption records: %w", err)
	}

	return entities, total, nil
}

// CountByStatus counts records with the given status.
func (r *AdoptionRecordRepositoryImpl) CountByStatus(ctx context.Context, status adoptionrecord.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{}).
		Where("status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count adoption records by status: %w", err)
	}
	return count, nil
}

// CountPendingFollowUp counts active records whose next follow-up date has passed.
func (r *AdoptionRecordRepositoryImpl) CountPendingFollowUp(ctx context.Context, before time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{}).
		Where("status = ? AND next_follow_up_date IS NOT NULL AND next_follow_up_date < ?",
			adoptionrecord.StatusActive.String(), before).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count pending follow-ups: %w", err)
	}
	return count, nil
}

// Count counts all records.
func (r *AdoptionRecordRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count adoption records: %w", err)
	}
	return count, nil
}

// MaxRecordSequence returns the highest record-number sequence issued for
// the given prefix (e.g. "AR-2025-"), zero when none exist.
func (r *AdoptionRecordRepositoryImpl) MaxRecordSequence(ctx context.Context, prefix string) (int, error) {
	var latest string

	err := r.db.WithContext(ctx).Model(&models.AdoptionRecordModel{}).
		Select("record_number").
		Where("record_number LIKE ?", prefix+"%").
		Order("record_number DESC").
		Limit(1).
		Scan(&latest).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query max record sequence: %w", err)
	}

	if len(latest) <= len(prefix) {
		return 0, nil
	}

	var seq int
	if _, err := fmt.Sscanf(latest[len(prefix):], "%d", &seq); err != nil {
		return 0, nil
	}
	return seq, nil
}
