// Package notification provides the application service for notifications.
package notification

import (
	"context"
	"fmt"

	"github.com/shelterhq/pawhaven/internal/domain/notification"
	"github.com/shelterhq/pawhaven/internal/shared/errors"
	"github.com/shelterhq/pawhaven/internal/shared/logger"
)

// Service handles notification operations
type Service struct {
	repo   notification.Repository
	logger logger.Interface
}

// NewService creates a new notification service
func NewService(repo notification.Repository, logger logger.Interface) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create creates a new unread notification
func (s *Service) Create(ctx context.Context, req CreateNotificationRequest) (*NotificationResponse, error) {
	n, err := notification.NewNotification(
		notification.NotificationType(req.Type),
		req.Title,
		req.Content,
		req.TargetID,
		req.TargetType,
	)
	if err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Errorw("failed to create notification", "error", err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return toNotificationResponse(n), nil
}

// List retrieves notifications with optional filters
func (s *Service) List(ctx context.Context, query ListNotificationsQuery) ([]*NotificationResponse, int64, error) {
	filter := notification.ListFilter{
		UnreadOnly: query.UnreadOnly,
		Page:       query.Page,
		Limit:      query.Limit,
	}

	if query.Type != "" {
		t := notification.NotificationType(query.Type)
		if !t.IsValid() {
			return nil, 0, errors.NewBadRequestError("invalid notification type filter")
		}
		filter.Type = &t
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Errorw("failed to list notifications", "error", err)
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}

	return toNotificationResponses(items), total, nil
}

// Get retrieves a notification by ID
func (s *Service) Get(ctx context.Context, id uint) (*NotificationResponse, error) {
	n, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toNotificationResponse(n), nil
}

// Update applies a partial update to a notification
func (s *Service) Update(ctx context.Context, id uint, req UpdateNotificationRequest) (*NotificationResponse, error) {
	n, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	attrs := notification.UpdateAttrs{
		Title:      req.Title,
		Content:    req.Content,
		TargetID:   req.TargetID,
		TargetType: req.TargetType,
		IsRead:     req.IsRead,
	}
	if req.Type != nil {
		t := notification.NotificationType(*req.Type)
		attrs.Type = &t
	}

	if err := n.Update(attrs); err != nil {
		return nil, errors.NewBadRequestError(err.Error())
	}

	if err := s.save(ctx, n); err != nil {
		return nil, err
	}

	return toNotificationResponse(n), nil
}

// MarkRead marks a single notification as read
func (s *Service) MarkRead(ctx context.Context, id uint) (*NotificationResponse, error) {
	n, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	n.MarkRead()
	if err := s.save(ctx, n); err != nil {
		return nil, err
	}

	return toNotificationResponse(n), nil
}

// MarkAllRead marks every unread notification as read
func (s *Service) MarkAllRead(ctx context.Context) (*MarkAllReadResponse, error) {
	updated, err := s.repo.MarkAllRead(ctx)
	if err != nil {
		s.logger.Errorw("failed to mark all notifications read", "error", err)
		return nil, fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return &MarkAllReadResponse{Updated: updated}, nil
}

// UnreadCount returns the number of unread notifications
func (s *Service) UnreadCount(ctx context.Context) (*UnreadCountResponse, error) {
	count, err := s.repo.CountUnread(ctx)
	if err != nil {
		s.logger.Errorw("failed to count unread notifications", "error", err)
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return &UnreadCountResponse{Count: count}, nil
}

// Delete removes a notification by ID
func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == notification.ErrNotificationNotFound {
			return errors.NewNotFoundError("notification not found")
		}
		s.logger.Errorw("failed to delete notification", "id", id, "error", err)
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func (s *Service) getByID(ctx context.Context, id uint) (*notification.Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Errorw("failed to get notification", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if n == nil {
		return nil, errors.NewNotFoundError("notification not found")
	}
	return n, nil
}

func (s *Service) save(ctx context.Context, n *notification.Notification) error {
	if err := s.repo.Update(ctx, n); err != nil {
		if err == notification.ErrVersionConflict {
			return errors.NewConflictError("notification was modified concurrently")
		}
		s.logger.Errorw("failed to update notification", "id", n.ID(), "error", err)
		return fmt.Errorf("failed to update notification: %w", err)
	}
	return nil
}
