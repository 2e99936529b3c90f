// Package donation provides the application service for donations.
package donation

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/donation"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles donation operations
type Service struct {
	repo   donation.Repository
	logger logger.Interface
}

// NewService creates a new donation service
func NewService(repo donation.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new donation in pending state
func (s *Service) Create(ctx context.Context, req CreateDonationRequest) (*DonationResponse, error) {
	var donationDate time.Time
	if req.DonationDate != nil {
		donationDate = *req.DonationDate
	}

	d, err := donation.NewDonation(
		req.DonorName,
		donation.DonorType(req.DonorType),
		req.Amount,
		donationDate,
		donation.DonationType(req.DonationType),
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := donation.UpdateAttrs{
		Purpose:       req.Purpose,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Remarks:       req.Remarks,
		Items:         toItems(req.Items),
		TotalValue:    req.TotalValue,
	}
	if err := d.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Errorw("failed to create donation", "error", err)
		return nil, fmt.Errorf("failed to create donation: %w", err)
	}

	return toDonationResponse(d), nil
}

// List retrieves donations with optional filters
func (s *Service) List(ctx context.Context, query ListDonationsQuery) ([]*DonationResponse, int64, error) {
	filter := donation.ListFilter{
		DonorName: query.DonorName,
		Page:      query.Page,
		Limit:     query.Limit,
	}

	if query.Status != "" {
		st := donation.Status(query.Status)
		if !st.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid status filter")
		}
		filter.Status = &st
	}
	if query.DonationType != "" {
		dt := donation.DonationType(query.DonationType)
		if !dt.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid donation type filter")
		}
		filter.DonationType = &dt
	}
	if query.DonorType != "" {
		dt := donation.DonorType(query.DonorType)
		if !dt.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid donor type filter")
		}
		filter.DonorType = &dt
	}

	donations, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list donations", "error", err)
		return nil, 0, fmt.Errorf("failed to list donations: %w", err)
	}

	return toDonationResponses(donations), total, nil
}

// Get retrieves a donation by ID
func (s *Service) Get(ctx context.Context, id uint) (*DonationResponse, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDonationResponse(d), nil
}

// Update applies a partial update to a donation
func (s *Service) Update(ctx context.Context, id uint, req UpdateDonationRequest) (*DonationResponse, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := donation.UpdateAttrs{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		DonationDate:  req.DonationDate,
		Purpose:       req.Purpose,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		Remarks:       req.Remarks,
		Items:         toItems(req.Items),
		TotalValue:    req.TotalValue,
	}
	if req.DonorType != nil {
		dt := donation.DonorType(*req.DonorType)
		attrs.DonorType = &dt
	}
	if req.DonationType != nil {
		dt := donation.DonationType(*req.DonationType)
		attrs.DonationType = &dt
	}
	if req.Status != nil {
		st := donation.Status(*req.Status)
		attrs.Status = &st
	}

	if err := d.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	return toDonationResponse(d), nil
}

// Confirm marks a donation as confirmed
func (s *Service) Confirm(ctx context.Context, id uint) (*DonationResponse, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Confirm()
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	return toDonationResponse(d), nil
}

// Cancel marks a donation as cancelled
func (s *Service) Cancel(ctx context.Context, id uint) (*DonationResponse, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.Cancel()
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	return toDonationResponse(d), nil
}

// IssueReceipt marks the donation receipt as issued
func (s *Service) IssueReceipt(ctx context.Context, id uint) (*DonationResponse, error) {
	d, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d.IssueReceipt()
	if err := s.save(ctx, d); err != nil {
		return nil, err
	}

	return toDonationResponse(d), nil
}

// Delete removes a donation by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == donation.ErrDonationNotFound {
			return errors.NewNotFoundError("donation not found")
		}
		s.logger.Errorw("failed to delete donation", "id", id, "error", err)
		return fmt.Errorf("failed to delete donation: %w", err)
	}
	return nil
}

// Stats returns the donation statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*DonationStatsResponse, error) {
	stats := &DonationStatsResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.repo.Count(gctx)
		if err != nil {
			return err
		}
		stats.Total = total
		return nil
	})
	g.Go(func() error {
		pending, err := s.repo.CountByStatus(gctx, donation.StatusPending)
		if err != nil {
			return err
		}
		stats.Pending = pending
		return nil
	})
	g.Go(func() error {
		confirmed, err := s.repo.CountByStatus(gctx, donation.StatusConfirmed)
		if err != nil {
			return err
		}
		stats.Confirmed = confirmed
		return nil
	})
	g.Go(func() error {
		totalAmount, err := s.repo.SumConfirmedAmount(gctx)
		if err != nil {
			return err
		}
		stats.TotalAmount = totalAmount
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather donation stats", "error", err)
		return nil, fmt.Errorf("failed to gather donation stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*donation.Donation, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get donation", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get donation: %w", err)
	}
	if d == nil {
		return nil, errors.NewNotFoundError("donation not found")
	}
	return d, nil
}

func (s *Service) save(ctx context.Context, d *donation.Donation) error {
	if err := s.repo.Update(ctx, d); err != nil {
		if err == donation.ErrVersionConflict {
			return errors.NewConflictError("donation was modified concurrently")
		}
		s.logger.Errorw("failed to update donation", "id", d.ID(), "error", err)
		return fmt.Errorf("failed to update donation: %w", err)
	}
	return nil
}
