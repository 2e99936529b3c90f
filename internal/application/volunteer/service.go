// Package volunteer provides the application service for volunteer management.
package volunteer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles volunteer management operations
type Service struct {
	repo   volunteer.Repository
	logger logger.Interface
}

// NewService creates a new volunteer service
func NewService(repo volunteer.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new volunteer in active state
func (s *Service) Create(ctx context.Context, req CreateVolunteerRequest) (*VolunteerResponse, error) {
	v, err := volunteer.NewVolunteer(req.Name, req.Phone, req.Email)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := volunteer.UpdateAttrs{
		Age:           req.Age,
		Occupation:    req.Occupation,
		Experience:    req.Experience,
		AvailableTime: req.AvailableTime,
		Skills:        req.Skills,
		Avatar:        req.Avatar,
		Address:       req.Address,
	}
	if err := v.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Errorw("failed to create volunteer", "error", err)
		return nil, fmt.Errorf("failed to create volunteer: %w", err)
	}

	return toVolunteerResponse(v), nil
}

// List retrieves volunteers with optional filters
func (s *Service) List(ctx context.Context, query ListVolunteersQuery) ([]*VolunteerResponse, int64, error) {
	filter := volunteer.ListFilter{
		Name:   query.Name,
		Skills: query.Skills,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	if query.Status != "" {
		st := volunteer.Status(query.Status)
		if !st.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid status filter")
		}
		filter.Status = &st
	}

	volunteers, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list volunteers", "error", err)
		return nil, 0, fmt.Errorf("failed to list volunteers: %w", err)
	}

	return toVolunteerResponses(volunteers), total, nil
}

// Get retrieves a volunteer by ID
func (s *Service) Get(ctx context.Context, id uint) (*VolunteerResponse, error) {
	v, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toVolunteerResponse(v), nil
}

// Update applies a partial update to a volunteer
func (s *Service) Update(ctx context.Context, id uint, req UpdateVolunteerRequest) (*VolunteerResponse, error) {
	v, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := volunteer.UpdateAttrs{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Age:           req.Age,
		Occupation:    req.Occupation,
		Experience:    req.Experience,
		AvailableTime: req.AvailableTime,
		Skills:        req.Skills,
		Avatar:        req.Avatar,
		Address:       req.Address,
	}
	if req.Status != nil {
		st := volunteer.Status(*req.Status)
		attrs.Status = &st
	}

	if err := v.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Update(ctx, v); err != nil {
		if err == volunteer.ErrVersionConflict {
			return nil, errors.NewConflictError("volunteer was modified concurrently")
		}
		s.logger.Errorw("failed to update volunteer", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update volunteer: %w", err)
	}

	return toVolunteerResponse(v), nil
}

// AddHours logs service hours for a volunteer in a single atomic update
func (s *Service) AddHours(ctx context.Context, id uint, req AddHoursRequest) error {
	if err := s.repo.AddHours(ctx, id, req.Hours); err != nil {
		if err == volunteer.ErrVolunteerNotFound {
			return errors.NewNotFoundError("volunteer not found")
		}
		s.logger.Errorw("failed to add volunteer hours", "id", id, "error", err)
		return fmt.Errorf("failed to add volunteer hours: %w", err)
	}
	return nil
}

// Delete removes a volunteer by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == volunteer.ErrVolunteerNotFound {
			return errors.NewNotFoundError("volunteer not found")
		}
		s.logger.Errorw("failed to delete volunteer", "id", id, "error", err)
		return fmt.Errorf("failed to delete volunteer: %w", err)
	}
	return nil
}

// Stats returns the volunteer statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*VolunteerStatsResponse, error) {
	stats := &VolunteerStatsResponse{}

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
		active, err := s.repo.CountByStatus(gctx, volunteer.StatusActive)
		if err != nil {
			return err
		}
		stats.Active = active
		return nil
	})
	g.Go(func() error {
		inactive, err := s.repo.CountByStatus(gctx, volunteer.StatusInactive)
		if err != nil {
			return err
		}
		stats.Inactive = inactive
		return nil
	})
	g.Go(func() error {
		totalHours, err := s.repo.SumTotalHours(gctx)
		if err != nil {
			return err
		}
		stats.TotalHours = totalHours
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather volunteer stats", "error", err)
		return nil, fmt.Errorf("failed to gather volunteer stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*volunteer.Volunteer, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get volunteer", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get volunteer: %w", err)
	}
	if v == nil {
		return nil, errors.NewNotFoundError("volunteer not found")
	}
	return v, nil
}
