package mappers

import (
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/donation"
	"github.com/shelterhq/pawhaven/internal/infrastructure/persistence/models"
	"github.com/shelterhq/pawhaven/internal/shared/mapper"
)

// DonationMapper handles the conversion between domain entities and persistence models.
type DonationMapper interface {
	ToEntity(model *models.DonationModel) (*donation.Donation, error)
	ToModel(entity *donation.Donation) (*models.DonationModel, error)
	ToEntities(models []*models.DonationModel) ([]*donation.Donation, error)
}

// DonationMapperImpl is the concrete implementation of DonationMapper.
type DonationMapperImpl struct{}

// NewDonationMapper creates a new donation mapper.
func NewDonationMapper() DonationMapper {
	return &DonationMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *DonationMapperImpl) ToEntity(model *models.DonationModel) (*donation.Donation, error) {
	if model == nil {
		return nil, nil
	}

	items, err := unmarshalJSON[[]donation.Item](model.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to decode donation items: %w", err)
	}

	entity, err := donation.ReconstructDonation(
		model.ID,
		model.DonorName,
		donation.DonorType(model.DonorType),
		model.Amount,
		model.DonationDate,
		donation.DonationType(model.DonationType),
		model.Purpose,
		donation.Status(model.Status),
		model.PaymentMethod,
		model.TransactionID,
		model.Remarks,
		model.ReceiptIssued,
		items,
		model.TotalValue,
		model.CreatedAt,
		model.UpdatedAt,
		model.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct donation entity: %w", err)
	}

	return entity, nil
}

// ToModel converts a domain entity to a persistence model.
func (m *DonationMapperImpl) ToModel(entity *donation.Donation) (*models.DonationModel, error) {
	if entity == nil {
		return nil, nil
	}

	items, err := marshalJSON(emptyIfNil(entity.Items()))
	if err != nil {
		return nil, err
	}

	return &models.DonationModel{
		ID:            entity.ID(),
		DonorName:     entity.DonorName(),
		DonorType:     entity.DonorType().String(),
		Amount:        entity.Amount(),
		DonationDate:  entity.DonationDate(),
		DonationType:  entity.Type().String(),
		Purpose:       entity.Purpose(),
		Status:        entity.Status().String(),
		PaymentMethod: entity.PaymentMethod(),
		TransactionID: entity.TransactionID(),
		Remarks:       entity.Remarks(),
		ReceiptIssued: entity.ReceiptIssued(),
		Items:         items,
		TotalValue:    entity.TotalValue(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
		Version:       entity.Version(),
	}, nil
}

// ToEntities converts multiple persistence models to domain entities.
func (m *DonationMapperImpl) ToEntities(modelList []*models.DonationModel) ([]*donation.Donation, error) {
	return mapper.MapSlicePtrWithID(modelList, m.ToEntity, func(model *models.DonationModel) uint { return model.ID })
}
