// Package rescue provides the application service for rescue operations.
package rescue

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/rescue"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles rescue record operations
type Service struct {
	repo   rescue.Repository
	logger logger.Interface
}

// NewService creates a new rescue service
func NewService(repo rescue.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new rescue record
func (s *Service) Create(ctx context.Context, req CreateRescueRequest) (*RescueResponse, error) {
	var rescueDate time.Time
	if req.RescueDate != nil {
		rescueDate = *req.RescueDate
	}

	r, err := rescue.NewRescue(
		req.PetID,
		req.PetName,
		rescueDate,
		req.RescueLocation,
		req.Rescuer,
		req.RescueType,
		req.Description,
		req.HealthCondition,
		req.ImmediateAction,
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := rescue.UpdateAttrs{
		Images:   req.Images,
		VideoURL: req.VideoURL,
		Cost:     req.Cost,
		Notes:    req.Notes,
	}
	if err := r.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, r); err != nil {
		s.logger.Errorw("failed to create rescue record", "error", err)
		return nil, fmt.Errorf("failed to create rescue record: %w", err)
	}

	return toRescueResponse(r), nil
}

// List retrieves rescue records with optional filters
func (s *Service) List(ctx context.Context, query ListRescuesQuery) ([]*RescueResponse, int64, error) {
	filter := rescue.ListFilter{
		Rescuer:        query.Rescuer,
		RescueLocation: query.RescueLocation,
		Page:           query.Page,
		Limit:          query.Limit,
	}
	if query.RescueType != "" {
		filter.RescueType = &query.RescueType
	}
	if query.HealthCondition != "" {
		filter.HealthCondition = &query.HealthCondition
	}

	rescues, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list rescue records", "error", err)
		return nil, 0, fmt.Errorf("failed to list rescue records: %w", err)
	}

	return toRescueResponses(rescues), total, nil
}

// Get retrieves a rescue record by ID
func (s *Service) Get(ctx context.Context, id uint) (*RescueResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get rescue record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rescue record: %w", err)
	}
	if r == nil {
		return nil, errors.NewNotFoundError("rescue record not found")
	}
	return toRescueResponse(r), nil
}

// Update applies a partial update to a rescue record
func (s *Service) Update(ctx context.Context, id uint, req UpdateRescueRequest) (*RescueResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get rescue record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get rescue record: %w", err)
	}
	if r == nil {
		return nil, errors.NewNotFoundError("rescue record not found")
	}

	attrs := rescue.UpdateAttrs{
		PetName:         req.PetName,
		RescueDate:      req.RescueDate,
		RescueLocation:  req.RescueLocation,
		Rescuer:         req.Rescuer,
		RescueType:      req.RescueType,
		Description:     req.Description,
		HealthCondition: req.HealthCondition,
		ImmediateAction: req.ImmediateAction,
		Images:          req.Images,
		VideoURL:        req.VideoURL,
		Cost:            req.Cost,
		Notes:           req.Notes,
	}
	if err := r.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Update(ctx, r); err != nil {
		if err == rescue.ErrVersionConflict {
			return nil, errors.NewConflictError("rescue record was modified concurrently")
		}
		s.logger.Errorw("failed to update rescue record", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update rescue record: %w", err)
	}

	return toRescueResponse(r), nil
}

// Delete removes a rescue record by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == rescue.ErrRescueNotFound {
			return errors.NewNotFoundError("rescue record not found")
		}
		s.logger.Errorw("failed to delete rescue record", "id", id, "error", err)
		return fmt.Errorf("failed to delete rescue record: %w", err)
	}
	return nil
}

// Stats returns the rescue statistics, counted concurrently. Critical
// rescues count as pending, healthy ones as completed.
func (s *Service) Stats(ctx context.Context) (*RescueStatsResponse, error) {
	stats := &RescueStatsResponse{}

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
		pending, err := s.repo.CountByHealthCondition(gctx, "critical")
		if err != nil {
			return err
		}
		stats.Pending = pending
		return nil
	})
	g.Go(func() error {
		completed, err := s.repo.CountByHealthCondition(gctx, "healthy")
		if err != nil {
			return err
		}
		stats.Completed = completed
		return nil
	})
	g.Go(func() error {
		totalCost, err := s.repo.SumCost(gctx)
		if err != nil {
			return err
		}
		stats.TotalCost = totalCost
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather rescue stats", "error", err)
		return nil, fmt.Errorf("failed to gather rescue stats: %w", err)
	}

	return stats, nil
}
