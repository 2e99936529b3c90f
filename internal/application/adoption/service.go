// Package adoption provides the application service for adoption applications.
package adoption

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/adoption"
	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// defaultReviewer is used when the review request names no operator
const defaultReviewer = "admin"

// Service handles adoption application operations
type Service struct {
	repo    adoption.Repository
	petRepo pet.Repository
	logger  logger.Interface
}

// NewService creates a new adoption service
func NewService(repo adoption.Repository, petRepo pet.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:    repo,
		petRepo: petRepo,
		logger:  logger,
	}
}

// Create submits a new adoption application in pending state
func (s *Service) Create(ctx context.Context, req CreateAdoptionRequest) (*AdoptionResponse, error) {
	applicant := adoption.Applicant{
		Name:    req.ApplicantName,
		Phone:   req.ApplicantPhone,
		Email:   req.ApplicantEmail,
		IDCard:  req.ApplicantIDCard,
		Address: req.ApplicantAddress,
	}

	a, err := adoption.NewAdoption(req.PetID, req.PetName, applicant)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := adoption.UpdateAttrs{
		Remarks:       req.Remarks,
		Experience:    req.Experience,
		HousingType:   req.HousingType,
		HasYard:       req.HasYard,
		FamilyMembers: req.FamilyMembers,
		WorkHours:     req.WorkHours,
		ReviewNotes:   req.ReviewNotes,
	}
	if err := a.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Errorw("failed to create adoption application", "error", err)
		return nil, fmt.Errorf("failed to create adoption application: %w", err)
	}

	return toAdoptionResponse(a), nil
}

// List retrieves adoption applications with optional filters
func (s *Service) List(ctx context.Context, query ListAdoptionsQuery) ([]*AdoptionResponse, int64, error) {
	filter := adoption.ListFilter{
		ApplicantName: query.ApplicantName,
		PetName:       query.PetName,
		Page:          query.Page,
		Limit:         query.Limit,
	}

	if query.Status != "" {
		st := adoption.Status(query.Status)
		if !st.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid status filter")
		}
		filter.Status = &st
	}

	apps, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list adoption applications", "error", err)
		return nil, 0, fmt.Errorf("failed to list adoption applications: %w", err)
	}

	return toAdoptionResponses(apps), total, nil
}

// Get retrieves an adoption application by ID
func (s *Service) Get(ctx context.Context, id uint) (*AdoptionResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAdoptionResponse(a), nil
}

// Update applies a partial update to a pending application
func (s *Service) Update(ctx context.Context, id uint, req UpdateAdoptionRequest) (*AdoptionResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := adoption.UpdateAttrs{
		ApplicantName:    req.ApplicantName,
		ApplicantPhone:   req.ApplicantPhone,
		ApplicantEmail:   req.ApplicantEmail,
		ApplicantIDCard:  req.ApplicantIDCard,
		ApplicantAddress: req.ApplicantAddress,
		Remarks:          req.Remarks,
		Experience:       req.Experience,
		HousingType:      req.HousingType,
		HasYard:          req.HasYard,
		FamilyMembers:    req.FamilyMembers,
		WorkHours:        req.WorkHours,
		ReviewNotes:      req.ReviewNotes,
	}
	if err := a.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, a); err != nil {
		return nil, err
	}

	return toAdoptionResponse(a), nil
}

// Review approves or rejects a pending application
func (s *Service) Review(ctx context.Context, id uint, req ReviewAdoptionRequest) (*AdoptionResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch adoption.Status(req.Status) {
	case adoption.StatusApproved:
		approver := defaultReviewer
		if req.Approver != nil && *req.Approver != "" {
			approver = *req.Approver
		}
		if err := a.Approve(approver, req.Remarks); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	case adoption.StatusRejected:
		rejecter := defaultReviewer
		if req.Rejecter != nil && *req.Rejecter != "" {
			rejecter = *req.Rejecter
		}
		reason := ""
		if req.RejectReason != nil {
			reason = *req.RejectReason
		}
		if err := a.Reject(rejecter, reason, req.Remarks); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	default:
		return nil, errors.NewBadRequestError("review status must be approved or rejected")
	}

	if err := s.save(ctx, a); err != nil {
		return nil, err
	}

	if a.Status() == adoption.StatusApproved {
		s.markPetAdopted(ctx, a)
	}

	return toAdoptionResponse(a), nil
}

// Cancel cancels a pending application
func (s *Service) Cancel(ctx context.Context, id uint) (*AdoptionResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := a.Cancel(); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, a); err != nil {
		return nil, err
	}

	return toAdoptionResponse(a), nil
}

// Delete removes an adoption application by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == adoption.ErrAdoptionNotFound {
			return errors.NewNotFoundError("adoption application not found")
		}
		s.logger.Errorw("failed to delete adoption application", "id", id, "error", err)
		return fmt.Errorf("failed to delete adoption application: %w", err)
	}
	return nil
}

// Stats returns the adoption application statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*AdoptionStatsResponse, error) {
	stats := &AdoptionStatsResponse{}

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
		pending, err := s.repo.CountByStatus(gctx, adoption.StatusPending)
		if err != nil {
			return err
		}
		stats.Pending = pending
		return nil
	})
	g.Go(func() error {
		approved, err := s.repo.CountByStatus(gctx, adoption.StatusApproved)
		if err != nil {
			return err
		}
		stats.Approved = approved
		return nil
	})
	g.Go(func() error {
		rejected, err := s.repo.CountByStatus(gctx, adoption.StatusRejected)
		if err != nil {
			return err
		}
		stats.Rejected = rejected
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather adoption stats", "error", err)
		return nil, fmt.Errorf("failed to gather adoption stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*adoption.Adoption, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get adoption application", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get adoption application: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("adoption application not found")
	}
	return a, nil
}

func (s *Service) save(ctx context.Context, a *adoption.Adoption) error {
	if err := s.repo.Update(ctx, a); err != nil {
		if err == adoption.ErrVersionConflict {
			return errors.NewConflictError("adoption application was modified concurrently")
		}
		s.logger.Errorw("failed to update adoption application", "id", a.ID(), "error", err)
		return fmt.Errorf("failed to update adoption application: %w", err)
	}
	return nil
}

// markPetAdopted flips the pet to adopted after an approval. Best effort;
// the approval itself has already been persisted.
func (s *Service) markPetAdopted(ctx context.Context, a *adoption.Adoption) {
	p, err := s.petRepo.GetByID(ctx, a.PetID())
	if err != nil || p == nil {
		s.logger.Warnw("failed to load pet after approval", "pet_id", a.PetID(), "error", err)
		return
	}

	date := a.ApplicationDate()
	if a.ApprovalDate() != nil {
		date = *a.ApprovalDate()
	}
	p.MarkAdopted(a.Applicant().Name, date)

	if err := s.petRepo.Update(ctx, p); err != nil {
		s.logger.Warnw("failed to mark pet adopted after approval", "pet_id", a.PetID(), "error", err)
	}
}
