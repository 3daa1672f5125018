package configrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"go.uber.org/zap"
)

// The config table holds a single row keyed by a fixed sentinel id, so lazy
// initialization can never produce a second row.
const singletonID = 1

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

const configColumns = `id, service_days, start_time, end_time, holidays, non_working_day_message,
        available_balance, daily_minimum_deposit, max_amount, commission_percentage`

func scanConfig(row pgx.Row) (*domain.CashExpressConfig, error) {
	var cfg domain.CashExpressConfig
	err := row.Scan(&cfg.ID, &cfg.ServiceDays, &cfg.StartTime, &cfg.EndTime, &cfg.Holidays,
		&cfg.NonWorkingDayMessage, &cfg.AvailableBalance, &cfg.DailyMinimumDeposit,
		&cfg.MaxAmount, &cfg.CommissionPercentage)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetOrCreate returns the singleton config, creating it with defaults on
// first access.
func (r *Repository) GetOrCreate(ctx context.Context) (*domain.CashExpressConfig, error) {
	insert := `INSERT INTO cash_express_config (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`
	query := `SELECT ` + configColumns + ` FROM cash_express_config WHERE id = $1`

	var cfg *domain.CashExpressConfig
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insert, singletonID); err != nil {
			zap.L().Error("can't init cash express config", zap.Error(err))
			return err
		}
		var err error
		cfg, err = scanConfig(r.db.QueryRow(ctx, query, singletonID))
		if err != nil {
			zap.L().Error("can't get cash express config", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// GetForUpdate locks the config row for the rest of the surrounding
// transaction. Callers must run it inside TXManager.Begin.
func (r *Repository) GetForUpdate(ctx context.Context) (*domain.CashExpressConfig, error) {
	query := `SELECT ` + configColumns + ` FROM cash_express_config WHERE id = $1 FOR UPDATE`
	cfg, err := scanConfig(r.db.QueryRow(ctx, query, singletonID))
	if err != nil {
		zap.L().Error("can't lock cash express config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

func (r *Repository) Update(ctx context.Context, cfg *domain.CashExpressConfig) error {
	query := `
        UPDATE cash_express_config
        SET service_days = $1, start_time = $2, end_time = $3, holidays = $4,
            non_working_day_message = $5, daily_minimum_deposit = $6,
            max_amount = $7, commission_percentage = $8
        WHERE id = $9
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, cfg.ServiceDays, cfg.StartTime, cfg.EndTime, cfg.Holidays,
			cfg.NonWorkingDayMessage, cfg.DailyMinimumDeposit, cfg.MaxAmount,
			cfg.CommissionPercentage, singletonID)
		if err != nil {
			zap.L().Error("failed to update cash express config", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

// UpdateBalance writes the new available balance. It is meant to run inside
// the same transaction that locked the row with GetForUpdate.
func (r *Repository) UpdateBalance(ctx context.Context, newBalance float64) error {
	query := `UPDATE cash_express_config SET available_balance = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, newBalance, singletonID)
	if err != nil {
		zap.L().Error("failed to update available balance", zap.Error(err))
		return err
	}
	return nil
}

const bankAccountColumns = `id, beneficiary, account_number, clabe, display_order, is_active`

func (r *Repository) ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error) {
	query := `
        SELECT ` + bankAccountColumns + `
        FROM bank_accounts
        WHERE ($1 = FALSE OR is_active)
        ORDER BY display_order, id
    `
	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		zap.L().Error("can't get bank accounts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var acc domain.BankAccount
		err := rows.Scan(&acc.ID, &acc.Beneficiary, &acc.AccountNumber, &acc.CLABE, &acc.DisplayOrder, &acc.IsActive)
		if err != nil {
			zap.L().Error("can't scan bank account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

func (r *Repository) CreateBankAccount(ctx context.Context, acc *domain.BankAccount) error {
	query := `
        INSERT INTO bank_accounts (beneficiary, account_number, clabe, display_order, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	row := r.db.QueryRow(ctx, query, acc.Beneficiary, acc.AccountNumber, acc.CLABE, acc.DisplayOrder, acc.IsActive)
	if err := row.Scan(&acc.ID); err != nil {
		zap.L().Error("can't create bank account", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateBankAccount(ctx context.Context, acc *domain.BankAccount) (bool, error) {
	query := `
        UPDATE bank_accounts
        SET beneficiary = $1, account_number = $2, clabe = $3, display_order = $4, is_active = $5
        WHERE id = $6
    `
	tag, err := r.db.Exec(ctx, query, acc.Beneficiary, acc.AccountNumber, acc.CLABE, acc.DisplayOrder, acc.IsActive, acc.ID)
	if err != nil {
		zap.L().Error("can't update bank account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) DeleteBankAccount(ctx context.Context, id int) (bool, error) {
	query := `DELETE FROM bank_accounts WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete bank account", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
