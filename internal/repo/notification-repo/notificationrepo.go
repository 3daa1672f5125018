package notificationrepo

import (
	"context"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	query := `
        INSERT INTO notifications
            (user_id, type, entity_id, title, message, action, status, previous_status, read, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, n.UserID, n.Type, n.EntityID, n.Title, n.Message,
		n.Action, n.Status, n.PreviousStatus, n.ExpiresAt)
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		zap.L().Error("can't create notification", zap.Error(err))
		return err
	}
	return nil
}

// FindByUser returns non-expired notifications, newest first.
func (r *Repository) FindByUser(ctx context.Context, userID int, unreadOnly bool) ([]domain.Notification, error) {
	query := `
        SELECT id, user_id, type, entity_id, title, message, action, status, previous_status, read, expires_at, created_at
        FROM notifications
        WHERE user_id = $1 AND expires_at > now() AND ($2 = FALSE OR read = FALSE)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, unreadOnly)
	if err != nil {
		zap.L().Error("can't get notifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.EntityID, &n.Title, &n.Message, &n.Action,
			&n.Status, &n.PreviousStatus, &n.Read, &n.ExpiresAt, &n.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan notification row", zap.Error(err))
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *Repository) CountUnread(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE AND expires_at > now()`
	var count int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		zap.L().Error("can't count unread notifications", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// MarkRead flips a single notification owned by userID; returns false when no
// such row exists.
func (r *Repository) MarkRead(ctx context.Context, id, userID int) (bool, error) {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`
	tag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		zap.L().Error("can't mark notification read", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID int) error {
	query := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		zap.L().Error("can't mark all notifications read", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM notifications WHERE expires_at <= now()`
	tag, err := r.db.Exec(ctx, query)
	if err != nil {
		zap.L().Error("can't delete expired notifications", zap.Error(err))
		return 0, err
	}
	return tag.RowsAffected(), nil
}
