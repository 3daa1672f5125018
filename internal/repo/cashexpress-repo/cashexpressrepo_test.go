package cashexpressrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/status"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func requestRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "folio", "user_id", "amount", "commission", "total_to_deposit", "status",
		"sender_name", "sender_phone", "recipient_name", "recipient_phone", "relationship",
		"deposit_receipt", "signed_receipt", "rejection_reason",
		"estimated_delivery_date", "receipt_sent_at", "deposit_validated_at", "available_from", "delivered_at", "created_at",
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	now := time.Now()

	t.Run("Id and creation time come back from the insert", func(t *testing.T) {
		passthroughTx(txManager)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO cash_express_requests")).
			WithArgs("CE-1", 1, 100.0, 6.5, 107.0, status.CashPendiente, "", "", "", "", "", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, now))

		req := &domain.CashExpressRequest{
			Folio:          "CE-1",
			UserID:         1,
			Amount:         100,
			Commission:     6.5,
			TotalToDeposit: 107,
			Status:         status.CashPendiente,
		}
		err := repo.Save(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, 5, req.ID)
		assert.Equal(t, now, req.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	t.Run("Request exists", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_express_requests")).
			WithArgs(5).
			WillReturnRows(requestRows().AddRow(
				5, "CE-1", 1, 100.0, 6.5, 107.0, status.CashPendiente,
				"", "", "", "", "", "", "", "",
				nil, nil, nil, nil, nil, now,
			))

		req, err := repo.FindByID(context.Background(), 5)
		assert.NoError(t, err)
		assert.Equal(t, "CE-1", req.Folio)
		assert.Equal(t, 107.0, req.TotalToDeposit)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing request returns nil without error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_express_requests")).
			WithArgs(99).
			WillReturnError(pgx.ErrNoRows)

		req, err := repo.FindByID(context.Background(), 99)
		assert.NoError(t, err)
		assert.Nil(t, req)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_express_requests")).
			WithArgs(5).
			WillReturnError(errors.New("database error"))

		req, err := repo.FindByID(context.Background(), 5)
		assert.Error(t, err)
		assert.Nil(t, req)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_FindAll(t *testing.T) {
	repo, mock, _ := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM cash_express_requests")).
		WithArgs(0, status.CashPendiente).
		WillReturnRows(requestRows().
			AddRow(5, "CE-1", 1, 100.0, 6.5, 107.0, status.CashPendiente,
				"", "", "", "", "", "", "", "", nil, nil, nil, nil, nil, now).
			AddRow(6, "CE-2", 2, 200.0, 13.0, 213.0, status.CashPendiente,
				"", "", "", "", "", "", "", "", nil, nil, nil, nil, nil, now))

	requests, err := repo.FindAll(context.Background(), 0, status.CashPendiente)
	assert.NoError(t, err)
	assert.Len(t, requests, 2)
	assert.Equal(t, "CE-2", requests[1].Folio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_PendingSummary(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Sum and count of the promised statuses", func(t *testing.T) {
		pending := []string{status.CashPendiente, status.CashEnEsperaConfirmacion, status.CashDepositoValidado}
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ANY($1)")).
			WithArgs(pending).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce", "count"}).AddRow(450.0, 3))

		total, count, err := repo.PendingSummary(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 450.0, total)
		assert.Equal(t, 3, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE status = ANY($1)")).
			WithArgs(pgxmock.AnyArg()).
			WillReturnError(errors.New("database error"))

		_, _, err := repo.PendingSummary(context.Background())
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	passthroughTx(txManager)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_express_requests")).
		WithArgs(status.CashRebotado, "", "", "", "", "", "", "", "Comprobante ilegible",
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.CashExpressRequest{
		ID: 5, Status: status.CashRebotado, RejectionReason: "Comprobante ilegible",
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
