// Package user provides the application service for admin accounts.
package user

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shelterhq/pawhaven/internal/domain/user"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// PasswordHasher hashes and verifies account passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) error
}

// Service handles admin account operations
type Service struct {
	repo   user.Repository
	hasher PasswordHasher
	logger logger.Interface
}

// NewService creates a new user service
func NewService(repo user.Repository, hasher PasswordHasher, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		logger: logger,
	}
}

// Create registers a new admin account
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(req.Username, hash, req.RealName, user.Role(req.Role))
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	attrs := user.UpdateAttrs{
		Avatar: req.Avatar,
		Phone:  req.Phone,
		Email:  req.Email,
	}
	if err := u.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if err == user.ErrUsernameTaken {
			return nil, errors.NewConflictError("username already exists")
		}
		s.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return ToUserResponse(u), nil
}

// List retrieves admin accounts with optional filters
func (s *Service) List(ctx context.Context, query ListUsersQuery) ([]*UserResponse, int64, error) {
	filter := user.ListFilter{
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	if query.Role != "" {
		role := user.Role(query.Role)
		if !role.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid role filter")
		}
		filter.Role = &role
	}

	users, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return toUserResponses(users), total, nil
}

// Get retrieves an admin account by ID
func (s *Service) Get(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(u), nil
}

// Update applies an update to an admin account, re-hashing the password
// when one is supplied
func (s *Service) Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserResponse, error) {
	u, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := user.UpdateAttrs{
		RealName: req.RealName,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
		Email:    req.Email,
	}
	if req.Role != nil {
		role := user.Role(*req.Role)
		attrs.Role = &role
	}
	if req.Status != nil {
		status := user.Status(*req.Status)
		attrs.Status = &status
	}

	if err := u.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.logger.Errorw("failed to hash password", "error", err)
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := u.ChangePassword(hash); err != nil {
			return nil, errors.NewBadRequestError(err.Error())
		}
	}

	if err := s.save(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

// Freeze locks an admin account
func (s *Service) Freeze(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Freeze()
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

// Unfreeze restores a locked account to active
func (s *Service) Unfreeze(ctx context.Context, id uint) (*UserResponse, error) {
	u, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Unfreeze()
	if err := s.save(ctx, u); err != nil {
		return nil, err
	}

	return ToUserResponse(u), nil
}

// ResetPassword replaces an account password
func (s *Service) ResetPassword(ctx context.Context, id uint, req ResetPasswordRequest) error {
	u, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.ChangePassword(hash); err != nil {
		return errors.NewBadRequestError(err.Error())
	}

	return s.save(ctx, u)
}

// Delete removes an admin account by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == user.ErrUserNotFound {
			return errors.NewNotFoundError("user not found")
		}
		s.logger.Errorw("failed to delete user", "id", id, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Stats returns the admin account statistics, counted concurrently
func (s *Service) Stats(ctx context.Context) (*UserStatsResponse, error) {
	stats := &UserStatsResponse{}

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
		active, err := s.repo.CountByStatus(gctx, user.StatusActive)
		if err != nil {
			return err
		}
		stats.Active = active
		return nil
	})
	g.Go(func() error {
		inactive, err := s.repo.CountByStatus(gctx, user.StatusInactive)
		if err != nil {
			return err
		}
		stats.Inactive = inactive
		return nil
	})
	g.Go(func() error {
		locked, err := s.repo.CountByStatus(gctx, user.StatusLocked)
		if err != nil {
			return err
		}
		stats.Locked = locked
		return nil
	})
	g.Go(func() error {
		admin, err := s.repo.CountByRole(gctx, user.RoleAdmin)
		if err != nil {
			return err
		}
		stats.Admin = admin
		return nil
	})
	g.Go(func() error {
		staff, err := s.repo.CountByRole(gctx, user.RoleStaff)
		if err != nil {
			return err
		}
		stats.Staff = staff
		return nil
	})
	g.Go(func() error {
		volunteer, err := s.repo.CountByRole(gctx, user.RoleVolunteer)
		if err != nil {
			return err
		}
		stats.Volunteer = volunteer
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Errorw("failed to gather user stats", "error", err)
		return nil, fmt.Errorf("failed to gather user stats: %w", err)
	}

	return stats, nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get user", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}
	return u, nil
}

func (s *Service) save(ctx context.Context, u *user.User) error {
	if err := s.repo.Update(ctx, u); err != nil {
		if err == user.ErrVersionConflict {
			return errors.NewConflictError("user was modified concurrently")
		}
		if err == user.ErrUsernameTaken {
			return errors.NewConflictError("username already exists")
		}
		s.logger.Errorw("failed to update user", "id", u.ID(), "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}
