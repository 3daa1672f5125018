package configrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
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

func configRow() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "service_days", "start_time", "end_time", "holidays", "non_working_day_message",
		"available_balance", "daily_minimum_deposit", "max_amount", "commission_percentage",
	}).AddRow(1, []int{1, 2, 3, 4, 5}, "09:00", "20:00", []string{}, "", 5000.0, 500.0, 1000.0, 6.5)
}

func TestRepository_GetOrCreate(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	t.Run("Insert is a no-op when the row exists", func(t *testing.T) {
		passthroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cash_express_config")).
			WithArgs(1).
			WillReturnResult(pgxmock.NewResult("INSERT", 0))
		mock.ExpectQuery(regexp.QuoteMeta("FROM cash_express_config")).
			WithArgs(1).
			WillReturnRows(configRow())

		cfg, err := repo.GetOrCreate(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 1, cfg.ID)
		assert.Equal(t, 6.5, cfg.CommissionPercentage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Init failure is surfaced", func(t *testing.T) {
		passthroughTx(txManager)
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO cash_express_config")).
			WithArgs(1).
			WillReturnError(errors.New("database error"))

		cfg, err := repo.GetOrCreate(context.Background())
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(1).
		WillReturnRows(configRow())

	cfg, err := repo.GetForUpdate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.AvailableBalance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo, mock, _ := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET available_balance = $1")).
		WithArgs(4700.0, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateBalance(context.Background(), 4700))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	passthroughTx(txManager)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE cash_express_config")).
		WithArgs([]int{1, 2, 3}, "10:00", "18:00", []string{"2025-12-25"}, "Cerrado", 600.0, 2000.0, 5.0, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.CashExpressConfig{
		ID:                   1,
		ServiceDays:          []int{1, 2, 3},
		StartTime:            "10:00",
		EndTime:              "18:00",
		Holidays:             []string{"2025-12-25"},
		NonWorkingDayMessage: "Cerrado",
		DailyMinimumDeposit:  600,
		MaxAmount:            2000,
		CommissionPercentage: 5,
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_BankAccounts(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("List active only", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM bank_accounts")).
			WithArgs(true).
			WillReturnRows(pgxmock.NewRows([]string{
				"id", "beneficiary", "account_number", "clabe", "display_order", "is_active",
			}).AddRow(1, "Mariam Store", "4242424242424242", "", 0, true))

		accounts, err := repo.ListBankAccounts(context.Background(), true)
		assert.NoError(t, err)
		assert.Len(t, accounts, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Create picks up the generated id", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bank_accounts")).
			WithArgs("Mariam Store", "4242424242424242", "", 0, true).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

		acc := &domain.BankAccount{Beneficiary: "Mariam Store", AccountNumber: "4242424242424242", IsActive: true}
		assert.NoError(t, repo.CreateBankAccount(context.Background(), acc))
		assert.Equal(t, 7, acc.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Update reports a missing row", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE bank_accounts")).
			WithArgs("Mariam Store", "123", "", 0, false, 99).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		found, err := repo.UpdateBankAccount(context.Background(), &domain.BankAccount{
			ID: 99, Beneficiary: "Mariam Store", AccountNumber: "123",
		})
		assert.NoError(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete reports whether a row went away", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM bank_accounts")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		found, err := repo.DeleteBankAccount(context.Background(), 7)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
