// Package adoptionrecord provides the application service for adoption records.
package adoptionrecord

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/adoptionrecord"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// maxNumberRetries bounds record-number regeneration on unique-key collisions
const maxNumberRetries = 3

// Service handles adoption record operations
type Service struct {
	repo   adoptionrecord.Repository
	logger logger.Interface
	now    func() time.Time
}

// NewService creates a new adoption record service
func NewService(repo adoptionrecord.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Create creates a new adoption record. The record number is generated from
// the current year's highest sequence and regenerated on collision.
func (s *Service) Create(ctx context.Context, req CreateRecordRequest) (*RecordResponse, error) {
	var adoptionDate time.Time
	if req.AdoptionDate != nil {
		adoptionDate = *req.AdoptionDate
	}

	prefix := fmt.Sprintf("AR-%d-", s.now().Year())
	seq, err := s.repo.MaxRecordSequence(ctx, prefix)
	if err != nil {
		s.logger.Errorw("failed to query record number sequence", "error", err)
		return nil, fmt.Errorf("failed to generate record number: %w", err)
	}

	r, err := adoptionrecord.NewRecord(
		fmt.Sprintf("%s%06d", prefix, seq+1),
		req.PetID,
		req.PetName,
		req.AdopterID,
		req.AdopterName,
		adoptionDate,
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	r.SetApplicationDetails(
		req.AdoptionApplicationID,
		req.PetBreed,
		req.PetImage,
		req.AdopterPhone,
		req.AdopterEmail,
		req.AdopterAddress,
		req.AgreementNumber,
		req.Remarks,
		req.Operator,
	)

	for attempt := 1; ; attempt++ {
		err = s.repo.Create(ctx, r)
		if err == nil {
			break
		}
		if err != adoptionrecord.ErrRecordNumberTaken || attempt >= maxNumberRetries {
			s.logger.Errorw("failed to create adoption record", "attempt", attempt, "error", err)
			return nil, fmt.Errorf("failed to create adoption record: %w", err)
		}

		seq, err = s.repo.MaxRecordSequence(ctx, prefix)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate record number: %w", err)
		}
		if err := r.SetRecordNumber(fmt.Sprintf("%s%06d", prefix, seq+1)); err != nil {
			return nil, fmt.Errorf("failed to regenerate record number: %w", err)
		}
		s.logger.Warnw("record number collision, retrying", "attempt", attempt, "record_number", r.RecordNumber())
	}

	return toRecordResponse(r), nil
}

// List retrieves adoption records with optional filters
func (s *Service) List(ctx context.Context, query ListRecordsQuery) ([]*RecordResponse, int64, error) {
	filter := adoptionrecord.ListFilter{
		PetName:      query.PetName,
		AdopterName:  query.AdopterName,
		RecordNumber: query.RecordNumber,
		StartDate:    query.StartDate,
		EndDate:      query.EndDate,
		Page:         query.Page,
		Limit:        query.Limit,
	}

	if query.Status != "" {
		st := adoptionrecord.Status(query.Status)
		if !st.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid status filter")
		}
		filter.Status = &st
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list adoption records", "error", err)
		return nil, 0, fmt.Errorf("failed to list adoption records: %w", err)
	}

	return toRecordResponses(records), total, nil
}

// Get retrieves an adoption record by ID
func (s *Service) Get(ctx context.Context, id string) (*RecordResponse, error) {
	r, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRecordResponse(r), nil
}

// Update applies a partial update to an adoption record
func (s *Service) Update(ctx context.Context, id string, req UpdateRecordRequest) (*RecordResponse, error) {
	r, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := adoptionrecord.UpdateAttrs{
		PetName:         req.PetName,
		PetBreed:        req.PetBreed,
		PetImage:        req.PetImage,
		AdopterName:     req.AdopterName,
		AdopterPhone:    req.AdopterPhone,
		AdopterEmail:    req.AdopterEmail,
		AdopterAddress:  req.AdopterAddress,
		AdoptionDate:    req.AdoptionDate,
		AgreementNumber: req.AgreementNumber,
		Remarks:         req.Remarks,
		UpdatedBy:       req.Operator,
	}
	if req.Status != nil {
		st := adoptionrecord.Status(*req.Status)
		attrs.Status = &st
	}

	if err := r.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	return toRecordResponse(r), nil
}

// AddFollowUp appends a follow-up entry to an adoption record
func (s *Service) AddFollowUp(ctx context.Context, id string, req AddFollowUpRequest) (*RecordResponse, error) {
	r, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := r.AddFollowUp(req.Content, req.Operator, req.NextFollowUpDate); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, r); err != nil {
		return nil, err
	}

	return toRecordResponse(r), nil
}

// Delete removes an adoption record by ID
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == adoptionrecord.ErrRecordNotFound {
			return errors.NewNotFoundError("adoption record not found")
		}
		s.logger.Errorw("failed to delete adoption record", "id", id, "error", err)
		return fmt.Errorf("failed to delete adoption record: %w", err)
	}
	return nil
}

// Stats returns the adoption record statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*RecordStatsResponse, error) {
	stats := &RecordStatsResponse{}
	today := s.now().Truncate(24 * time.Hour)

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
		active, err := s.repo.CountByStatus(gctx, adoptionrecord.StatusActive)
		if err != nil {
			return err
		}
		stats.Active = active
		return nil
	})
	g.Go(func() error {
		completed, err := s.repo.CountByStatus(gctx, adoptionrecord.StatusCompleted)
		if err != nil {
			return err
		}
		stats.Completed = completed
		return nil
	})
	g.Go(func() error {
		cancelled, err := s.repo.CountByStatus(gctx, adoptionrecord.StatusCancelled)
		if err != nil {
			return err
		}
		stats.Cancelled = cancelled
		return nil
	})
	g.Go(func() error {
		pending, err := s.repo.CountPendingFollowUp(gctx, today)
		if err != nil {
			return err
		}
		stats.PendingFollowUp = pending
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather adoption record stats", "error", err)
		return nil, fmt.Errorf("failed to gather adoption record stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id string) (*adoptionrecord.Record, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get adoption record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get adoption record: %w", err)
	}
	if r == nil {
		return nil, errors.NewNotFoundError("adoption record not found")
	}
	return r, nil
}

func (s *Service) save(ctx context.Context, r *adoptionrecord.Record) error {
	if err := s.repo.Update(ctx, r); err != nil {
		if err == adoptionrecord.ErrVersionConflict {
			return errors.NewConflictError("adoption record was modified concurrently")
		}
		s.logger.Errorw("failed to update adoption record", "id", r.ID(), "error", err)
		return fmt.Errorf("failed to update adoption record: %w", err)
	}
	return nil
}
