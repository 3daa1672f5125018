package cashexpressrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/status"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const requestColumns = `id, folio, user_id, amount, commission, total_to_deposit, status,
        sender_name, sender_phone, recipient_name, recipient_phone, relationship,
        deposit_receipt, signed_receipt, rejection_reason,
        estimated_delivery_date, receipt_sent_at, deposit_validated_at, available_from, delivered_at, created_at`

func scanRequest(row pgx.Row) (*domain.CashExpressRequest, error) {
	var req domain.CashExpressRequest
	err := row.Scan(&req.ID, &req.Folio, &req.UserID, &req.Amount, &req.Commission, &req.TotalToDeposit,
		&req.Status, &req.SenderName, &req.SenderPhone, &req.RecipientName, &req.RecipientPhone,
		&req.Relationship, &req.DepositReceipt, &req.SignedReceipt, &req.RejectionReason,
		&req.EstimatedDelivery, &req.ReceiptSentAt, &req.DepositValidatedAt, &req.AvailableFrom,
		&req.DeliveredAt, &req.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *Repository) Save(ctx context.Context, req *domain.CashExpressRequest) error {
	query := `
        INSERT INTO cash_express_requests
            (folio, user_id, amount, commission, total_to_deposit, status,
             sender_name, sender_phone, recipient_name, recipient_phone, relationship,
             estimated_delivery_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			req.Folio, req.UserID, req.Amount, req.Commission, req.TotalToDeposit, req.Status,
			req.SenderName, req.SenderPhone, req.RecipientName, req.RecipientPhone, req.Relationship,
			req.EstimatedDelivery)
		if err := row.Scan(&req.ID, &req.CreatedAt); err != nil {
			zap.L().Error("can't save cash express request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.CashExpressRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM cash_express_requests WHERE id = $1`
	req, err := scanRequest(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find cash express request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

// FindAll returns requests newest first. userID 0 means all users; status ""
// means any status.
func (r *Repository) FindAll(ctx context.Context, userID int, st string) ([]domain.CashExpressRequest, error) {
	query := `
        SELECT ` + requestColumns + `
        FROM cash_express_requests
        WHERE ($1 = 0 OR user_id = $1) AND ($2 = '' OR status = $2)
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID, st)
	if err != nil {
		zap.L().Error("can't get cash express requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.CashExpressRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			zap.L().Error("can't scan cash express request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *Repository) Update(ctx context.Context, req *domain.CashExpressRequest) error {
	query := `
        UPDATE cash_express_requests
        SET status = $1, sender_name = $2, sender_phone = $3, recipient_name = $4,
            recipient_phone = $5, relationship = $6, deposit_receipt = $7, signed_receipt = $8,
            rejection_reason = $9, receipt_sent_at = $10, deposit_validated_at = $11,
            available_from = $12, delivered_at = $13
        WHERE id = $14
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query,
			req.Status, req.SenderName, req.SenderPhone, req.RecipientName, req.RecipientPhone,
			req.Relationship, req.DepositReceipt, req.SignedReceipt, req.RejectionReason,
			req.ReceiptSentAt, req.DepositValidatedAt, req.AvailableFrom, req.DeliveredAt, req.ID)
		if err != nil {
			zap.L().Error("failed to update cash express request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// PendingSummary sums and counts the requests the ledger has already promised
// money to: PENDIENTE, EN_ESPERA_CONFIRMACION and DEPOSITO_VALIDADO.
func (r *Repository) PendingSummary(ctx context.Context) (float64, int, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0), COUNT(*)
        FROM cash_express_requests
        WHERE status = ANY($1)
    `
	pending := []string{status.CashPendiente, status.CashEnEsperaConfirmacion, status.CashDepositoValidado}

	var total float64
	var count int
	row := r.db.QueryRow(ctx, query, pending)
	if err := row.Scan(&total, &count); err != nil {
		zap.L().Error("can't get pending summary", zap.Error(err))
		return 0, 0, err
	}
	return total, count, nil
}
