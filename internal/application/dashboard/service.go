// Package dashboard aggregates cross-entity statistics for the admin home page.
package dashboard

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/adoption"
	"github.com/shelterhq/pawhaven/internal/domain/pet"
	"github.com/shelterhq/pawhaven/internal/domain/volunteer"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

const (
	// trendSampleSize bounds how many applications feed the trend histogram
	trendSampleSize = 100
	// trendMonths is the number of months the trend chart shows
	trendMonths = 6
	// defaultRecentLimit is the recent-applications row count when unspecified
	defaultRecentLimit = 5
)

// Service handles dashboard aggregation
type Service struct {
	petRepo       pet.Repository
	adoptionRepo  adoption.Repository
	volunteerRepo volunteer.Repository
	logger        logger.Interface
}

// NewService creates a new dashboard service
func NewService(petRepo pet.Repository, adoptionRepo adoption.Repository, volunteerRepo volunteer.Repository, logger logger.Interface) *Service {
	return &Service{
		petRepo:       petRepo,
		adoptionRepo:  adoptionRepo,
		volunteerRepo: volunteerRepo,
		logger:        logger,
	}
}

// Overview returns the headline counts, gathered concurrently
func (s *Service) Overview(ctx context.Context) (*OverviewResponse, error) {
	overview := &OverviewResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.petRepo.Count(gctx)
		if err != nil {
			return err
		}
		overview.TotalPets = total
		return nil
	})
	g.Go(func() error {
		adopted, err := s.petRepo.CountByAdoptionStatus(gctx, pet.AdoptionStatusAdopted)
		if err != nil {
			return err
		}
		overview.AdoptedPets = adopted
		return nil
	})
	g.Go(func() error {
		pending, err := s.adoptionRepo.CountByStatus(gctx, adoption.StatusPending)
		if err != nil {
			return err
		}
		overview.PendingAdoptions = pending
		return nil
	})
	g.Go(func() error {
		active, err := s.volunteerRepo.CountByStatus(gctx, volunteer.StatusActive)
		if err != nil {
			return err
		}
		overview.ActiveVolunteers = active
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather dashboard overview", "error", err)
		return nil, fmt.Errorf("failed to gather dashboard overview: %w", err)
	}

	return overview, nil
}

// AdoptionTrend builds a per-month histogram over the latest applications.
// Fixed sample rows are returned when no applications exist yet so the
// chart renders on a fresh install.
func (s *Service) AdoptionTrend(ctx context.Context) ([]TrendPoint, error) {
	apps, err := s.adoptionRepo.ListRecent(ctx, trendSampleSize)
	if err != nil {
		s.logger.Errorw("failed to load applications for trend", "error", err)
		return nil, fmt.Errorf("failed to load applications for trend: %w", err)
	}

	monthly := make(map[string]int)
	for _, a := range apps {
		monthly[a.ApplicationDate().Format("2006-01")]++
	}

	if len(monthly) == 0 {
		return []TrendPoint{
			{Name: "2024-08", Apps: 12},
			{Name: "2024-09", Apps: 19},
			{Name: "2024-10", Apps: 15},
			{Name: "2024-11", Apps: 25},
			{Name: "2024-12", Apps: 22},
			{Name: "2025-01", Apps: 18},
		}, nil
	}

	points := make([]TrendPoint, 0, len(monthly))
	for name, count := range monthly {
		points = append(points, TrendPoint{Name: name, Apps: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Name < points[j].Name })

	if len(points) > trendMonths {
		points = points[len(points)-trendMonths:]
	}
	return points, nil
}

// PetDistribution returns the pet type breakdown with chart display names.
// Fixed sample rows are returned when no pets exist yet.
func (s *Service) PetDistribution(ctx context.Context) ([]DistributionSlice, error) {
	counts, err := s.petRepo.CountGroupByType(ctx)
	if err != nil {
		s.logger.Errorw("failed to load pet type distribution", "error", err)
		return nil, fmt.Errorf("failed to load pet type distribution: %w", err)
	}

	if len(counts) == 0 {
		return []DistributionSlice{
			{Name: "Dogs", Value: 5},
			{Name: "Cats", Value: 3},
			{Name: "Other", Value: 2},
		}, nil
	}

	// Everything besides dogs and cats folds into a single slice
	var dogs, cats, other int64
	for petType, count := range counts {
		switch petType {
		case pet.PetTypeDog:
			dogs += count
		case pet.PetTypeCat:
			cats += count
		default:
			other += count
		}
	}

	slices := make([]DistributionSlice, 0, 3)
	if dogs > 0 {
		slices = append(slices, DistributionSlice{Name: "Dogs", Value: dogs})
	}
	if cats > 0 {
		slices = append(slices, DistributionSlice{Name: "Cats", Value: cats})
	}
	if other > 0 {
		slices = append(slices, DistributionSlice{Name: "Other", Value: other})
	}
	return slices, nil
}

// RecentApplications returns the latest applications, newest first
func (s *Service) RecentApplications(ctx context.Context, limit int) ([]RecentApplication, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	apps, err := s.adoptionRepo.ListRecent(ctx, limit)
	if err != nil {
		s.logger.Errorw("failed to load recent applications", "error", err)
		return nil, fmt.Errorf("failed to load recent applications: %w", err)
	}

	rows := make([]RecentApplication, 0, len(apps))
	for _, a := range apps {
		rows = append(rows, RecentApplication{
			ApplicationID:   a.ID(),
			UserID:          0,
			PetID:           a.PetID(),
			ApplicantName:   a.Applicant().Name,
			PetName:         a.PetName(),
			Status:          a.Status().String(),
			ApplicationDate: a.ApplicationDate().Format("2006-01-02"),
		})
	}
	return rows, nil
}

// Dashboard aggregates all four sections, gathered concurrently
func (s *Service) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	resp := &DashboardResponse{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := s.Overview(gctx)
		if err != nil {
			return err
		}
		resp.Overview = overview
		return nil
	})
	g.Go(func() error {
		trend, err := s.AdoptionTrend(gctx)
		if err != nil {
			return err
		}
		resp.AdoptionTrend = trend
		return nil
	})
	g.Go(func() error {
		distribution, err := s.PetDistribution(gctx)
		if err != nil {
			return err
		}
		resp.PetDistribution = distribution
		return nil
	})
	g.Go(func() error {
		recent, err := s.RecentApplications(gctx, defaultRecentLimit)
		if err != nil {
			return err
		}
		resp.RecentApplications = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}
