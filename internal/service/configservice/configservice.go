package configservice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/pkg/validate"
	"go.uber.org/zap"
)

type Repo interface {
	GetOrCreate(ctx context.Context) (*domain.CashExpressConfig, error)
	Update(ctx context.Context, cfg *domain.CashExpressConfig) error
	ListBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error)
	CreateBankAccount(ctx context.Context, acc *domain.BankAccount) error
	UpdateBankAccount(ctx context.Context, acc *domain.BankAccount) (bool, error)
	DeleteBankAccount(ctx context.Context, id int) (bool, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

var (
	ErrServiceDaysRequired  = errors.New("at least one service day is required")
	ErrInvalidServiceDay    = errors.New("service days must be weekday indices 0-6")
	ErrInvalidTimeFormat    = errors.New("time must be HH:MM in 24h format")
	ErrInvalidTimeRange     = errors.New("start time must be before end time")
	ErrInvalidHoliday       = errors.New("holidays must be ISO dates")
	ErrInvalidDeposit       = errors.New("daily minimum deposit must be greater than zero")
	ErrInvalidMaxAmount     = errors.New("max amount must be greater than zero")
	ErrInvalidCommission    = errors.New("commission percentage must be between 0 and 100")
	ErrBeneficiaryRequired  = errors.New("beneficiary is required")
	ErrInvalidAccountNumber = errors.New("invalid account number")
	ErrInvalidCLABE         = errors.New("CLABE must be 18 digits")
	ErrBankAccountNotFound  = errors.New("bank account not found")
)

func (s *Service) GetConfig(ctx context.Context) (*domain.CashExpressConfig, error) {
	cfg, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		zap.L().Error("failed to get config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

type UpdateConfigInput struct {
	ServiceDays          []int
	StartTime            string
	EndTime              string
	Holidays             []string
	NonWorkingDayMessage string
	DailyMinimumDeposit  float64
	MaxAmount            float64
	CommissionPercentage float64
}

func (s *Service) UpdateConfig(ctx context.Context, in UpdateConfigInput) (*domain.CashExpressConfig, error) {
	if len(in.ServiceDays) == 0 {
		return nil, ErrServiceDaysRequired
	}
	for _, day := range in.ServiceDays {
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidServiceDay, day)
		}
	}
	if !validate.IsHHMM(in.StartTime) || !validate.IsHHMM(in.EndTime) {
		return nil, ErrInvalidTimeFormat
	}
	if toMinutes(in.StartTime) >= toMinutes(in.EndTime) {
		return nil, ErrInvalidTimeRange
	}
	for _, h := range in.Holidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidHoliday, h)
		}
	}
	if in.DailyMinimumDeposit <= 0 {
		return nil, ErrInvalidDeposit
	}
	if in.MaxAmount <= 0 {
		return nil, ErrInvalidMaxAmount
	}
	if in.CommissionPercentage < 0 || in.CommissionPercentage > 100 {
		return nil, ErrInvalidCommission
	}

	cfg, err := s.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	cfg.ServiceDays = in.ServiceDays
	cfg.StartTime = in.StartTime
	cfg.EndTime = in.EndTime
	cfg.Holidays = in.Holidays
	if cfg.Holidays == nil {
		cfg.Holidays = []string{}
	}
	if in.NonWorkingDayMessage != "" {
		cfg.NonWorkingDayMessage = in.NonWorkingDayMessage
	}
	cfg.DailyMinimumDeposit = in.DailyMinimumDeposit
	cfg.MaxAmount = in.MaxAmount
	cfg.CommissionPercentage = in.CommissionPercentage

	if err := s.repo.Update(ctx, cfg); err != nil {
		zap.L().Error("failed to update config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}

func toMinutes(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

func (s *Service) GetBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error) {
	accounts, err := s.repo.ListBankAccounts(ctx, activeOnly)
	if err != nil {
		zap.L().Error("failed to get bank accounts", zap.Error(err))
		return nil, err
	}
	return accounts, nil
}

func validateBankAccount(acc *domain.BankAccount) error {
	if strings.TrimSpace(acc.Beneficiary) == "" {
		return ErrBeneficiaryRequired
	}
	number := strings.TrimSpace(acc.AccountNumber)
	if number == "" {
		return ErrInvalidAccountNumber
	}
	// 16-digit card numbers carry a Luhn check digit.
	if len(number) == 16 && !validate.IsLuhn(number) {
		return ErrInvalidAccountNumber
	}
	if acc.CLABE != "" && len(acc.CLABE) != 18 {
		return ErrInvalidCLABE
	}
	acc.AccountNumber = number
	return nil
}

func (s *Service) CreateBankAccount(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error) {
	if err := validateBankAccount(acc); err != nil {
		return nil, err
	}
	if err := s.repo.CreateBankAccount(ctx, acc); err != nil {
		zap.L().Error("failed to create bank account", zap.Error(err))
		return nil, err
	}
	return acc, nil
}

func (s *Service) UpdateBankAccount(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error) {
	if err := validateBankAccount(acc); err != nil {
		return nil, err
	}
	found, err := s.repo.UpdateBankAccount(ctx, acc)
	if err != nil {
		zap.L().Error("failed to update bank account", zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, ErrBankAccountNotFound
	}
	return acc, nil
}

func (s *Service) DeleteBankAccount(ctx context.Context, id int) error {
	found, err := s.repo.DeleteBankAccount(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete bank account", zap.Error(err))
		return err
	}
	if !found {
		return ErrBankAccountNotFound
	}
	return nil
}
