package cashservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/status"
	"github.com/mariamstore/backend/pkg/folio"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, req *domain.CashExpressRequest) error
	FindByID(ctx context.Context, id int) (*domain.CashExpressRequest, error)
	FindAll(ctx context.Context, userID int, status string) ([]domain.CashExpressRequest, error)
	Update(ctx context.Context, req *domain.CashExpressRequest) error
	PendingSummary(ctx context.Context) (float64, int, error)
}

type ConfigRepo interface {
	GetOrCreate(ctx context.Context) (*domain.CashExpressConfig, error)
	GetForUpdate(ctx context.Context) (*domain.CashExpressConfig, error)
	UpdateBalance(ctx context.Context, newBalance float64) error
}

type HistoryRepo interface {
	Append(ctx context.Context, h *domain.BalanceHistory) error
	List(ctx context.Context, limit, offset int) ([]domain.BalanceHistory, error)
	Count(ctx context.Context) (int, error)
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, userID int, domainType string, entityID int, newStatus, previousStatus string)
}

const notifyDomain = "cash_express"

type Service struct {
	repo        Repo
	configRepo  ConfigRepo
	historyRepo HistoryRepo
	notifier    Notifier
	txManager   pg.TXManager
	now         func() time.Time
}

func New(repo Repo, configRepo ConfigRepo, historyRepo HistoryRepo, notifier Notifier, txManager pg.TXManager) *Service {
	return &Service{
		repo:        repo,
		configRepo:  configRepo,
		historyRepo: historyRepo,
		notifier:    notifier,
		txManager:   txManager,
		now:         time.Now,
	}
}

var (
	ErrRequestNotFound    = errors.New("cash express request not found")
	ErrForbidden          = errors.New("no permission for this request")
	ErrAmountOutOfRange   = errors.New("amount out of range")
	ErrInvalidStatus      = errors.New("invalid cash express status")
	ErrInvalidState       = errors.New("operation not allowed in current request status")
	ErrReceiptRequired    = errors.New("deposit receipt is required")
	ErrNoReceiptToConfirm = errors.New("no deposit receipt to confirm")
	ErrRejectionRequired  = errors.New("rejection reason is required")
	ErrIdentityIncomplete = errors.New("sender and recipient data are required")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrInsufficientFunds  = errors.New("insufficient available balance")
	ErrFolioConflict      = errors.New("folio already exists")
)

type CreateRequestInput struct {
	Amount         float64
	SenderName     string
	SenderPhone    string
	RecipientName  string
	RecipientPhone string
	Relationship   string
}

// CreateRequest opens a new cash pickup request. The commission is a
// percentage of the principal, and the deposit the client owes is rounded up
// to a whole currency unit because cash deposits cannot be fractional.
func (s *Service) CreateRequest(ctx context.Context, userID int, in CreateRequestInput) (*domain.CashExpressRequest, error) {
	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	if in.Amount <= 0 || in.Amount > cfg.MaxAmount {
		return nil, fmt.Errorf("%w: amount must be between $1 and $%.0f", ErrAmountOutOfRange, cfg.MaxAmount)
	}

	commission := in.Amount * cfg.CommissionPercentage / 100
	req := &domain.CashExpressRequest{
		Folio:          folio.New("CE"),
		UserID:         userID,
		Amount:         in.Amount,
		Commission:     commission,
		TotalToDeposit: math.Ceil(in.Amount + commission),
		Status:         status.CashPendiente,
		SenderName:     in.SenderName,
		SenderPhone:    in.SenderPhone,
		RecipientName:  in.RecipientName,
		RecipientPhone: in.RecipientPhone,
		Relationship:   in.Relationship,
	}

	if avail, err := s.CalculateAvailability(ctx, in.Amount); err != nil {
		zap.L().Error("can't estimate delivery date", zap.Error(err))
	} else {
		req.EstimatedDelivery = &avail.Date
	}

	if err := s.repo.Save(ctx, req); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrFolioConflict
		}
		zap.L().Error("can't save cash express request", zap.Error(err))
		return nil, err
	}
	return req, nil
}

func (s *Service) GetRequest(ctx context.Context, id, userID int, isAdmin bool) (*domain.CashExpressRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get cash express request", zap.Error(err))
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if !isAdmin && req.UserID != userID {
		return nil, ErrForbidden
	}
	return req, nil
}

func (s *Service) GetRequests(ctx context.Context, userID int, isAdmin bool, statusFilter string) ([]domain.CashExpressRequest, error) {
	if statusFilter != "" && !status.IsCashStatus(statusFilter) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, statusFilter)
	}
	filterUser := userID
	if isAdmin {
		filterUser = 0
	}
	requests, err := s.repo.FindAll(ctx, filterUser, statusFilter)
	if err != nil {
		zap.L().Error("failed to get cash express requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}

// UploadDepositReceipt stores or replaces the receipt URL without touching
// the status; sending it for review is a separate explicit customer action.
func (s *Service) UploadDepositReceipt(ctx context.Context, id, userID int, receiptURL string) (*domain.CashExpressRequest, error) {
	if receiptURL == "" {
		return nil, ErrReceiptRequired
	}
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.UserID != userID {
		return nil, ErrForbidden
	}
	switch req.Status {
	case status.CashPendiente, status.CashRebotado, status.CashEnEsperaConfirmacion:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, req.Status)
	}

	req.DepositReceipt = receiptURL
	req.RejectionReason = ""
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ConfirmDepositReceipt is the customer sending the uploaded receipt to
// review; it moves the request to EN_ESPERA_CONFIRMACION.
func (s *Service) ConfirmDepositReceipt(ctx context.Context, id, userID int) (*domain.CashExpressRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.UserID != userID {
		return nil, ErrForbidden
	}
	if req.DepositReceipt == "" {
		return nil, ErrNoReceiptToConfirm
	}
	if req.Status != status.CashPendiente && req.Status != status.CashRebotado {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, req.Status)
	}
	if err := status.CashTransition(req.Status, status.CashEnEsperaConfirmacion); err != nil {
		return nil, err
	}

	previousStatus := req.Status
	now := s.now()
	req.Status = status.CashEnEsperaConfirmacion
	req.ReceiptSentAt = &now
	req.RejectionReason = ""
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, req.UserID, notifyDomain, req.ID, req.Status, previousStatus)
	return req, nil
}

// UploadSignedReceipt stores the pickup receipt signed by the recipient; it
// only makes sense once the deposit has been validated.
func (s *Service) UploadSignedReceipt(ctx context.Context, id int, signedURL string) (*domain.CashExpressRequest, error) {
	if signedURL == "" {
		return nil, ErrReceiptRequired
	}
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.Status != status.CashDepositoValidado {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, req.Status)
	}

	req.SignedReceipt = signedURL
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateRecipientData completes the sender/recipient identity before payout;
// allowed only while the deposit is validated and the cash not yet handed
// over.
func (s *Service) UpdateRecipientData(ctx context.Context, id, userID int, in CreateRequestInput) (*domain.CashExpressRequest, error) {
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if req.UserID != userID {
		return nil, ErrForbidden
	}
	if req.Status != status.CashDepositoValidado {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, req.Status)
	}
	if in.SenderName == "" || in.SenderPhone == "" || in.RecipientName == "" ||
		in.RecipientPhone == "" || in.Relationship == "" {
		return nil, ErrIdentityIncomplete
	}

	req.SenderName = in.SenderName
	req.SenderPhone = in.SenderPhone
	req.RecipientName = in.RecipientName
	req.RecipientPhone = in.RecipientPhone
	req.Relationship = in.Relationship
	if err := s.repo.Update(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// UpdateStatus is the admin review path. REBOTADO needs a reason,
// DEPOSITO_VALIDADO stamps validation and the pickup availability time, and
// ENTREGADO pays out the principal: the balance debit, the history row and
// the status change land in one transaction or not at all.
func (s *Service) UpdateStatus(ctx context.Context, adminID, id int, newStatus, rejectionReason string, availableFrom *time.Time) (*domain.CashExpressRequest, error) {
	if !status.IsCashStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}
	req, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	if err := status.CashTransition(req.Status, newStatus); err != nil {
		return nil, err
	}

	previousStatus := req.Status
	now := s.now()

	switch newStatus {
	case status.CashRebotado:
		if rejectionReason == "" {
			return nil, ErrRejectionRequired
		}
		req.Status = newStatus
		req.RejectionReason = rejectionReason
		if err := s.repo.Update(ctx, req); err != nil {
			return nil, err
		}

	case status.CashDepositoValidado:
		from := availableFrom
		if from == nil {
			from = req.EstimatedDelivery
		}
		if from == nil {
			from = &now
		}
		req.Status = newStatus
		req.DepositValidatedAt = &now
		req.AvailableFrom = from
		if err := s.repo.Update(ctx, req); err != nil {
			return nil, err
		}

	case status.CashEntregado:
		if err := s.deliver(ctx, adminID, req, now); err != nil {
			return nil, err
		}

	default:
		req.Status = newStatus
		if err := s.repo.Update(ctx, req); err != nil {
			return nil, err
		}
	}

	s.notifier.NotifyStatusChange(ctx, req.UserID, notifyDomain, req.ID, req.Status, previousStatus)
	return req, nil
}

// deliver debits the principal from the available balance under a row lock.
// The commission is retained by the store: only request.Amount leaves the
// drawer.
func (s *Service) deliver(ctx context.Context, adminID int, req *domain.CashExpressRequest, now time.Time) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		if cfg.AvailableBalance < req.Amount {
			return fmt.Errorf("%w: balance $%.2f, payout $%.2f", ErrInsufficientFunds, cfg.AvailableBalance, req.Amount)
		}

		newBalance := cfg.AvailableBalance - req.Amount
		if err := s.configRepo.UpdateBalance(ctx, newBalance); err != nil {
			return err
		}
		history := &domain.BalanceHistory{
			Amount:          -req.Amount,
			PreviousBalance: cfg.AvailableBalance,
			NewBalance:      newBalance,
			Description:     fmt.Sprintf("Entrega de efectivo %s", req.Folio),
			UserID:          adminID,
			RequestID:       &req.ID,
		}
		if err := s.historyRepo.Append(ctx, history); err != nil {
			return err
		}

		req.Status = status.CashEntregado
		req.DeliveredAt = &now
		return s.repo.Update(ctx, req)
	})
}

// AddBalance registers a cash deposit into the drawer. The balance update and
// the audit row succeed or fail together.
func (s *Service) AddBalance(ctx context.Context, userID int, amount float64, description string) (*domain.BalanceHistory, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if description == "" {
		description = "Abono de saldo"
	}

	history := &domain.BalanceHistory{
		Amount:      amount,
		Description: description,
		UserID:      userID,
	}
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		cfg, err := s.configRepo.GetForUpdate(ctx)
		if err != nil {
			return err
		}
		history.PreviousBalance = cfg.AvailableBalance
		history.NewBalance = cfg.AvailableBalance + amount
		if err := s.configRepo.UpdateBalance(ctx, history.NewBalance); err != nil {
			return err
		}
		return s.historyRepo.Append(ctx, history)
	})
	if err != nil {
		zap.L().Error("failed to add balance", zap.Error(err))
		return nil, err
	}
	return history, nil
}

func (s *Service) GetBalanceHistory(ctx context.Context, limit, offset int) ([]domain.BalanceHistory, int, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	history, err := s.historyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.historyRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	return history, total, nil
}

func (s *Service) GetCurrentBalance(ctx context.Context) (*domain.CashExpressConfig, error) {
	cfg, err := s.configRepo.GetOrCreate(ctx)
	if err != nil {
		zap.L().Error("failed to get cash express config", zap.Error(err))
		return nil, err
	}
	return cfg, nil
}
