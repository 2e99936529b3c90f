package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/shelterhq/pawhaven/internal/domain/donation"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/mappers"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// DonationRepositoryImpl implements the donation.Repository interface.
type DonationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.DonationMapper
	logger logger.Interface
}

// NewDonationRepository creates a new donation repository instance.
func NewDonationRepository(db *gorm.DB, logger logger.Interface) donation.Repository {
	return &DonationRepositoryImpl{
		db:     db,
		mapper: mappers.NewDonationMapper(),
		logger: logger,
	}
}

// Create creates a new donation in the database.
func (r *DonationRepositoryImpl) Create(ctx context.Context, d *donation.Donation) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		r.logger.Errorw("failed to map donation entity to model", "error", err)
		return fmt.Errorf("failed to map donation entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create donation in database", "error", err)
		return fmt.Errorf("failed to create donation: %w", err)
	}

	if err := d.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set donation ID: %w", err)
	}

	r.logger.Infow("donation created", "id", model.ID, "donor", model.DonorName)
	return nil
}

// Update updates an existing donation with optimistic locking.
func (r *DonationRepositoryImpl) Update(ctx context.Context, d *donation.Donation) error {
	model, err := r.mapper.ToModel(d)
	if err != nil {
		r.logger.Errorw("failed to map donation entity to model", "error", err)
		return fmt.Errorf("failed to map donation entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.DonationModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]any{
			"donor_name":     model.DonorName,
			"donor_type":     model.DonorType,
			"amount":         model.Amount,
			"donation_date":  model.DonationDate,
			"donation_type":  model.DonationType,
			"purpose":        model.Purpose,
			"status":         model.Status,
			"payment_method": model.PaymentMethod,
			"transaction_id": model.TransactionID,
			"remarks":        model.Remarks,
			"receipt_issued": model.ReceiptIssued,
			"items":          model.Items,
			"total_value":    model.TotalValue,
			"updated_at":     model.UpdatedAt,
			"version":        model.Version,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update donation", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update donation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return donation.ErrVersionConflict
	}

	return nil
}

// Delete deletes a donation by ID.
func (r *DonationRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.DonationModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete donation", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete donation: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return donation.ErrDonationNotFound
	}

	r.logger.Infow("donation deleted", "id", id)
	return nil
}

// GetByID retrieves a donation by ID. Returns nil when not found.
func (r *DonationRepositoryImpl) GetByID(ctx context.Context, id uint) (*donation.Donation, error) {
	var model models.DonationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get donation by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves donations with optional filters, newest first.
func (r *DonationRepositoryImpl) List(ctx context.Context, filter donation.ListFilter) ([]*donation.Donation, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DonationModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DonorName != "" {
		query = query.Where("donor_name LIKE ?", "%"+filter.DonorName+"%")
	}
	if filter.DonationType != nil {
		query = query.Where("donation_type = ?", filter.DonationType.String())
	}
	if filter.DonorType != nil {
		query = query.Where("donor_type = ?", filter.DonorType.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count donations", "error", err)
		return nil, 0, fmt.Errorf("failed to count donations: %w", err)
	}

	query = query.Order("donation_date DESC")
	if filter.Page > 0 && filter.Limit > 0 {
		query = query.Offset((filter.Page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var modelList []*models.DonationModel
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list donations", "error", err)
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}

	entities, err := r.mapper.ToEntities(modelList)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map donations: %w", err)
	}

	return entities, total, nil
}

// CountByStatus counts donations with the given status.
func (r *DonationRepositoryImpl) CountByStatus(ctx context.Context, status donation.Status) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DonationModel{}).
		Where("status = ?", status.String()).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count donations by status: %w", err)
	}
	return count, nil
}

// Count counts all donations.
func (r *DonationRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.DonationModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count donations: %w", err)
	}
	return count, nil
}

// SumConfirmedAmount returns the total monetary amount across confirmed donations.
func (r *DonationRepositoryImpl) SumConfirmedAmount(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).Model(&models.DonationModel{}).
		Where("status = ?", donation.StatusConfirmed.String()).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum confirmed donations: %w", err)
	}
	return total, nil
}
