package balancehistoryrepo

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

// Append inserts an audit row. History is append-only; there is no update or
// delete path.
func (r *Repository) Append(ctx context.Context, h *domain.BalanceHistory) error {
	query := `
        INSERT INTO cash_express_balance_history
            (amount, previous_balance, new_balance, description, user_id, request_id)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query, h.Amount, h.PreviousBalance, h.NewBalance, h.Description, h.UserID, h.RequestID)
	if err := row.Scan(&h.ID, &h.CreatedAt); err != nil {
		zap.L().Error("can't append balance history", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.BalanceHistory, error) {
	query := `
        SELECT id, amount, previous_balance, new_balance, description, user_id, request_id, created_at
        FROM cash_express_balance_history
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		zap.L().Error("can't get balance history", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var history []domain.BalanceHistory
	for rows.Next() {
		var h domain.BalanceHistory
		err := rows.Scan(&h.ID, &h.Amount, &h.PreviousBalance, &h.NewBalance, &h.Description,
			&h.UserID, &h.RequestID, &h.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan balance history row", zap.Error(err))
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM cash_express_balance_history`)
	if err := row.Scan(&total); err != nil {
		zap.L().Error("can't count balance history", zap.Error(err))
		return 0, err
	}
	return total, nil
}
