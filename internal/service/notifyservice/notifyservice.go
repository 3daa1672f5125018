package notifyservice

import (
	"context"
	"errors"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	DomainOrder       = "order"
	DomainCashExpress = "cash_express"

	// Notifications are polled by the client; stale ones are purged after
	// this window.
	expiry = 5 * 24 * time.Hour
)

type Repo interface {
	Create(ctx context.Context, n *domain.Notification) error
	FindByUser(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, id, userID int) (bool, error)
	MarkAllRead(ctx context.Context, userID int) error
	DeleteExpired(ctx context.Context) (int64, error)
}

var ErrNotificationNotFound = errors.New("notification not found")

type Service struct {
	repo       Repo
	workerPool WorkerPoolI
}

func New(repo Repo) *Service {
	return &Service{
		repo:       repo,
		workerPool: NewWorkerPool(4),
	}
}

// NotifyStatusChange records a status-change notification for the user. It is
// fire-and-forget: the write happens on the worker pool and a failure never
// propagates back into the transition that triggered it.
func (s *Service) NotifyStatusChange(ctx context.Context, userID int, domainType string, entityID int, newStatus, previousStatus string) {
	msg, ok := statusMessages[domainType][newStatus]
	if !ok {
		zap.L().Warn("no notification message for status",
			zap.String("domain", domainType), zap.String("status", newStatus))
		return
	}

	notification := &domain.Notification{
		UserID:         userID,
		Type:           domainType,
		EntityID:       entityID,
		Title:          msg.Title,
		Message:        msg.Message,
		Action:         msg.Action,
		Status:         newStatus,
		PreviousStatus: previousStatus,
		ExpiresAt:      time.Now().Add(expiry),
	}

	// The request context may be gone by the time the worker runs.
	err := s.workerPool.AddTask(ctx, func() error {
		return s.repo.Create(context.Background(), notification)
	})
	if err != nil {
		zap.L().Error("can't enqueue notification", zap.Error(err))
	}
}

func (s *Service) GetNotifications(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.repo.FindByUser(ctx, userID, unreadOnly)
	if err != nil {
		zap.L().Error("failed to get notifications", zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *Service) CountUnread(ctx context.Context, userID int) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, id, userID int) error {
	found, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotificationNotFound
	}
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID int) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// PurgeExpired removes notifications past their expiry; scheduled from the
// application cron.
func (s *Service) PurgeExpired(ctx context.Context) error {
	deleted, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return err
	}
	if deleted > 0 {
		zap.L().Info("purged expired notifications", zap.Int64("count", deleted))
	}
	return nil
}

func (s *Service) Close() {
	s.workerPool.Close()
}
