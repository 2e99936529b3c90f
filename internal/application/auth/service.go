// Package auth provides the login and registration application service.
package auth

import (
	"context"
	"fmt"

	userapp "github.com/shelterhq/pawhaven/internal/application/user"
	"github.com/shelterhq/pawhaven/internal/domain/user"
	"github.com/shelterhq/pawhaven/internal/shared/constants"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// TokenIssuer signs access tokens for authenticated accounts
type TokenIssuer interface {
	Generate(userID uint, username, role string) (string, error)
}

// Service handles authentication operations
type Service struct {
	repo   user.Repository
	hasher userapp.PasswordHasher
	tokens TokenIssuer
	logger logger.Interface
}

// NewService creates a new auth service
func NewService(repo user.Repository, hasher userapp.PasswordHasher, tokens TokenIssuer, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

// Login checks credentials and issues an access token. Unknown usernames and
// wrong passwords produce the same error so accounts cannot be enumerated.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		s.logger.Errorw("failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	if err := s.hasher.Verify(u.PasswordHash(), req.Password); err != nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgAccountDisabled)
	}

	token, err := s.tokens.Generate(u.ID(), u.Username(), u.Role().String())
	if err != nil {
		s.logger.Errorw("failed to generate access token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", u.ID(), "username", u.Username())
	return &LoginResponse{
		AccessToken: token,
		User:        userapp.ToUserResponse(u),
	}, nil
}

// Register creates a staff account from a self-service registration
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*userapp.UserResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(req.Username, hash, req.RealName, user.RoleStaff)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if err == user.ErrUsernameTaken {
			return nil, errors.NewUnauthorizedError("username already exists")
		}
		s.logger.Errorw("failed to register user", "error", err)
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	s.logger.Infow("user registered", "user_id", u.ID(), "username", u.Username())
	return userapp.ToUserResponse(u), nil
}
