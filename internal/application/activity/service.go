// Package activity provides the application service for shelter activities.
package activity

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/activity"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles shelter activity operations
type Service struct {
	repo   activity.Repository
	logger logger.Interface
}

// NewService creates a new activity service
func NewService(repo activity.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new activity in upcoming state
func (s *Service) Create(ctx context.Context, req CreateActivityRequest) (*ActivityResponse, error) {
	a, err := activity.NewActivity(
		req.Title,
		activity.ActivityType(req.Type),
		req.StartDate,
		req.EndDate,
		req.Location,
		req.Description,
		req.Organizer,
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := activity.UpdateAttrs{
		ParticipantLimit: req.ParticipantLimit,
		Requirements:     req.Requirements,
		Images:           req.Images,
		Tags:             req.Tags,
	}
	if err := a.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Errorw("failed to create activity", "error", err)
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return toActivityResponse(a), nil
}

// List retrieves activities with optional filters
func (s *Service) List(ctx context.Context, query ListActivitiesQuery) ([]*ActivityResponse, int64, error) {
	filter := activity.ListFilter{
		Title:    query.Title,
		Location: query.Location,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	if query.Type != "" {
		t := activity.ActivityType(query.Type)
		if !t.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid activity type filter")
		}
		filter.Type = &t
	}
	if query.Status != "" {
		st := activity.Status(query.Status)
		if !st.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid status filter")
		}
		filter.Status = &st
	}

	activities, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list activities", "error", err)
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	return toActivityResponses(activities), total, nil
}

// Get retrieves an activity by ID
func (s *Service) Get(ctx context.Context, id uint) (*ActivityResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toActivityResponse(a), nil
}

// Update applies a partial update to an activity
func (s *Service) Update(ctx context.Context, id uint, req UpdateActivityRequest) (*ActivityResponse, error) {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := activity.UpdateAttrs{
		Title:            req.Title,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Location:         req.Location,
		Description:      req.Description,
		ParticipantLimit: req.ParticipantLimit,
		Organizer:        req.Organizer,
		Requirements:     req.Requirements,
		Images:           req.Images,
		Tags:             req.Tags,
	}
	if req.Type != nil {
		t := activity.ActivityType(*req.Type)
		attrs.Type = &t
	}
	if req.Status != nil {
		st := activity.Status(*req.Status)
		attrs.Status = &st
	}

	if err := a.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Update(ctx, a); err != nil {
		if err == activity.ErrVersionConflict {
			return nil, errors.NewConflictError("activity was modified concurrently")
		}
		s.logger.Errorw("failed to update activity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}

	return toActivityResponse(a), nil
}

// Join registers a participant, rejecting joins once the limit is reached
func (s *Service) Join(ctx context.Context, id uint) error {
	a, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if a.IsFull() {
		return errors.NewBadRequestError("activity is full")
	}

	if err := s.repo.IncrementParticipantCount(ctx, id); err != nil {
		s.logger.Errorw("failed to increment participant count", "id", id, "error", err)
		return fmt.Errorf("failed to increment participant count: %w", err)
	}
	return nil
}

// Leave unregisters a participant, never dropping the count below zero
func (s *Service) Leave(ctx context.Context, id uint) error {
	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DecrementParticipantCount(ctx, id); err != nil {
		s.logger.Errorw("failed to decrement participant count", "id", id, "error", err)
		return fmt.Errorf("failed to decrement participant count: %w", err)
	}
	return nil
}

// Delete removes an activity by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == activity.ErrActivityNotFound {
			return errors.NewNotFoundError("activity not found")
		}
		s.logger.Errorw("failed to delete activity", "id", id, "error", err)
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// Stats returns the activity statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*ActivityStatsResponse, error) {
	stats := &ActivityStatsResponse{}

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
		upcoming, err := s.repo.CountByStatus(gctx, activity.StatusUpcoming)
		if err != nil {
			return err
		}
		stats.Upcoming = upcoming
		return nil
	})
	g.Go(func() error {
		ongoing, err := s.repo.CountByStatus(gctx, activity.StatusOngoing)
		if err != nil {
			return err
		}
		stats.Ongoing = ongoing
		return nil
	})
	g.Go(func() error {
		completed, err := s.repo.CountByStatus(gctx, activity.StatusCompleted)
		if err != nil {
			return err
		}
		stats.Completed = completed
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather activity stats", "error", err)
		return nil, fmt.Errorf("failed to gather activity stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*activity.Activity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get activity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if a == nil {
		return nil, errors.NewNotFoundError("activity not found")
	}
	return a, nil
}
