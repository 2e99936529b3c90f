// Package pet provides the application service for pet management.
package pet

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles pet management operations
type Service struct {
	repo   pet.Repository
	logger logger.Interface
}

// NewService creates a new pet service
func NewService(repo pet.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create registers a new pet
func (s *Service) Create(ctx context.Context, req CreatePetRequest) (*PetResponse, error) {
	p, err := pet.NewPet(req.Name, pet.PetType(req.Type), req.Breed, req.Age, pet.Gender(req.Gender))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := pet.UpdateAttrs{
		Weight:      req.Weight,
		Color:       req.Color,
		Description: req.Description,
		Images:      req.Images,
		Location:    req.Location,
		RescueDate:  req.RescueDate,
		Rescuer:     req.Rescuer,
		Tags:        req.Tags,
	}
	if req.HealthStatus != nil {
		hs := pet.HealthStatus(*req.HealthStatus)
		attrs.HealthStatus = &hs
	}
	if req.AdoptionStatus != nil {
		as := pet.AdoptionStatus(*req.AdoptionStatus)
		attrs.AdoptionStatus = &as
	}
	if err := p.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Errorw("failed to create pet", "error", err)
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	return toPetResponse(p), nil
}

// List retrieves pets with optional filters
func (s *Service) List(ctx context.Context, query ListPetsQuery) ([]*PetResponse, int64, error) {
	filter := pet.ListFilter{
		Location: query.Location,
		Page:     query.Page,
		Limit:    query.Limit,
	}

	if query.Type != "" {
		t := pet.PetType(query.Type)
		if !t.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid pet type filter")
		}
		filter.Type = &t
	}
	if query.Gender != "" {
		g := pet.Gender(query.Gender)
		if !g.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid gender filter")
		}
		filter.Gender = &g
	}
	if query.HealthStatus != "" {
		hs := pet.HealthStatus(query.HealthStatus)
		if !hs.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid health status filter")
		}
		filter.HealthStatus = &hs
	}
	if query.AdoptionStatus != "" {
		as := pet.AdoptionStatus(query.AdoptionStatus)
		if !as.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid adoption status filter")
		}
		filter.AdoptionStatus = &as
	}

	pets, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list pets", "error", err)
		return nil, 0, fmt.Errorf("failed to list pets: %w", err)
	}

	return toPetResponses(pets), total, nil
}

// Get retrieves a pet by ID and bumps its view counter.
// The counter bump is best effort; a failed bump never fails the read.
func (s *Service) Get(ctx context.Context, id uint) (*PetResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get pet", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("pet not found")
	}

	resp := toPetResponse(p)
	if err := s.repo.IncrementViewCount(ctx, id); err != nil {
		s.logger.Warnw("failed to increment pet view count", "id", id, "error", err)
	} else {
		resp.ViewCount++
	}

	return resp, nil
}

// Update applies a partial update to a pet
func (s *Service) Update(ctx context.Context, id uint, req UpdatePetRequest) (*PetResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get pet", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get pet: %w", err)
	}
	if p == nil {
		return nil, errors.NewNotFoundError("pet not found")
	}

	attrs := pet.UpdateAttrs{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		Weight:      req.Weight,
		Color:       req.Color,
		Description: req.Description,
		Images:      req.Images,
		Location:    req.Location,
		RescueDate:  req.RescueDate,
		Rescuer:     req.Rescuer,
		Tags:        req.Tags,
		AdoptedBy:   req.AdoptedBy,
		AdoptedDate: req.AdoptedDate,
	}
	if req.Type != nil {
		t := pet.PetType(*req.Type)
		attrs.Type = &t
	}
	if req.Gender != nil {
		g := pet.Gender(*req.Gender)
		attrs.Gender = &g
	}
	if req.HealthStatus != nil {
		hs := pet.HealthStatus(*req.HealthStatus)
		attrs.HealthStatus = &hs
	}
	if req.AdoptionStatus != nil {
		as := pet.AdoptionStatus(*req.AdoptionStatus)
		attrs.AdoptionStatus = &as
	}

	if err := p.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Update(ctx, p); err != nil {
		if err == pet.ErrVersionConflict {
			return nil, errors.NewConflictError("pet was modified concurrently")
		}
		s.logger.Errorw("failed to update pet", "id", id, "error", err)
		return nil, fmt.Errorf("failed to update pet: %w", err)
	}

	return toPetResponse(p), nil
}

// Delete removes a pet by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == pet.ErrPetNotFound {
			return errors.NewNotFoundError("pet not found")
		}
		s.logger.Errorw("failed to delete pet", "id", id, "error", err)
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}

// Favorite atomically bumps the favorite counter
func (s *Service) Favorite(ctx context.Context, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get pet: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("pet not found")
	}

	if err := s.repo.IncrementFavoriteCount(ctx, id); err != nil {
		s.logger.Errorw("failed to increment favorite count", "id", id, "error", err)
		return fmt.Errorf("failed to increment favorite count: %w", err)
	}
	return nil
}

// Unfavorite atomically drops the favorite counter, never below zero
func (s *Service) Unfavorite(ctx context.Context, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get pet: %w", err)
	}
	if p == nil {
		return errors.NewNotFoundError("pet not found")
	}

	if err := s.repo.DecrementFavoriteCount(ctx, id); err != nil {
		s.logger.Errorw("failed to decrement favorite count", "id", id, "error", err)
		return fmt.Errorf("failed to decrement favorite count: %w", err)
	}
	return nil
}

// Stats returns the pet statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*PetStatsResponse, error) {
	stats := &PetStatsResponse{}

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
		available, err := s.repo.CountByAdoptionStatus(gctx, pet.AdoptionStatusAvailable)
		if err != nil {
			return err
		}
		stats.Available = available
		return nil
	})
	g.Go(func() error {
		adopted, err := s.repo.CountByAdoptionStatus(gctx, pet.AdoptionStatusAdopted)
		if err != nil {
			return err
		}
		stats.Adopted = adopted
		return nil
	})
	g.Go(func() error {
		treating, err := s.repo.CountByHealthStatus(gctx, pet.HealthStatusTreating)
		if err != nil {
			return err
		}
		stats.Treating = treating
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather pet stats", "error", err)
		return nil, fmt.Errorf("failed to gather pet stats: %w", err)
	}

	return stats, nil
}
