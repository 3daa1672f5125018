package cashservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/status"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

// Monday, so the service-day walk starts from a known weekday.
var testNow = time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

type mocks struct {
	repo       *MockRepo
	configRepo *MockConfigRepo
	history    *MockHistoryRepo
	notifier   *MockNotifier
	txManager  *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:       NewMockRepo(ctrl),
		configRepo: NewMockConfigRepo(ctrl),
		history:    NewMockHistoryRepo(ctrl),
		notifier:   NewMockNotifier(ctrl),
		txManager:  pg.NewMockTXManager(ctrl),
	}
	service := New(m.repo, m.configRepo, m.history, m.notifier, m.txManager)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, m
}

func defaultConfig() *domain.CashExpressConfig {
	return &domain.CashExpressConfig{
		ID:                   1,
		ServiceDays:          []int{1, 2, 3, 4, 5},
		StartTime:            "09:00",
		EndTime:              "20:00",
		AvailableBalance:     5000,
		DailyMinimumDeposit:  500,
		MaxAmount:            1000,
		CommissionPercentage: 6.5,
	}
}

func passthroughTx(m *mocks) {
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func TestCreateRequest(t *testing.T) {
	t.Run("Commission is a percentage and the deposit is rounded up", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(defaultConfig(), nil).Times(2)
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil)
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		req, err := service.CreateRequest(context.Background(), 1, CreateRequestInput{Amount: 100})
		assert.NoError(t, err)
		assert.Equal(t, status.CashPendiente, req.Status)
		assert.Equal(t, 6.5, req.Commission)
		assert.Equal(t, 107.0, req.TotalToDeposit)
		assert.NotEmpty(t, req.Folio)
		if assert.NotNil(t, req.EstimatedDelivery) {
			assert.Equal(t, testNow, *req.EstimatedDelivery)
		}
	})

	t.Run("Amount above the configured maximum is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(defaultConfig(), nil)

		_, err := service.CreateRequest(context.Background(), 1, CreateRequestInput{Amount: 1500})
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(defaultConfig(), nil)

		_, err := service.CreateRequest(context.Background(), 1, CreateRequestInput{Amount: 0})
		assert.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("Request survives a scheduler failure", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(defaultConfig(), nil)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(nil, errors.New("some error"))
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil).AnyTimes()
		m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		req, err := service.CreateRequest(context.Background(), 1, CreateRequestInput{Amount: 100})
		assert.NoError(t, err)
		assert.Nil(t, req.EstimatedDelivery)
	})
}

func TestUploadDepositReceipt(t *testing.T) {
	t.Run("Re-upload after a bounce clears the rejection reason", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashRebotado, RejectionReason: "Comprobante ilegible",
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		req, err := service.UploadDepositReceipt(context.Background(), 5, 1, "https://example.com/r.jpg")
		assert.NoError(t, err)
		assert.Equal(t, "https://example.com/r.jpg", req.DepositReceipt)
		assert.Empty(t, req.RejectionReason)
		assert.Equal(t, status.CashRebotado, req.Status)
	})

	t.Run("No receipt after validation", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashDepositoValidado,
		}, nil)

		_, err := service.UploadDepositReceipt(context.Background(), 5, 1, "https://example.com/r.jpg")
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Only the owner can upload", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashPendiente,
		}, nil)

		_, err := service.UploadDepositReceipt(context.Background(), 5, 2, "https://example.com/r.jpg")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestConfirmDepositReceipt(t *testing.T) {
	t.Run("Pending request with a receipt goes to review", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashPendiente, DepositReceipt: "https://example.com/r.jpg",
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "cash_express", 5, status.CashEnEsperaConfirmacion, status.CashPendiente)

		req, err := service.ConfirmDepositReceipt(context.Background(), 5, 1)
		assert.NoError(t, err)
		assert.Equal(t, status.CashEnEsperaConfirmacion, req.Status)
		assert.NotNil(t, req.ReceiptSentAt)
	})

	t.Run("Receipt must exist first", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashPendiente,
		}, nil)

		_, err := service.ConfirmDepositReceipt(context.Background(), 5, 1)
		assert.ErrorIs(t, err, ErrNoReceiptToConfirm)
	})

	t.Run("Already waiting for review", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashEnEsperaConfirmacion, DepositReceipt: "https://example.com/r.jpg",
		}, nil)

		_, err := service.ConfirmDepositReceipt(context.Background(), 5, 1)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestUpdateRecipientData(t *testing.T) {
	identity := CreateRequestInput{
		SenderName:     "Juan",
		SenderPhone:    "5512345678",
		RecipientName:  "María",
		RecipientPhone: "5587654321",
		Relationship:   "Hermana",
	}

	t.Run("All five fields are required", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashDepositoValidado,
		}, nil)

		incomplete := identity
		incomplete.Relationship = ""
		_, err := service.UpdateRecipientData(context.Background(), 5, 1, incomplete)
		assert.ErrorIs(t, err, ErrIdentityIncomplete)
	})

	t.Run("Identity is stored while the deposit is validated", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashDepositoValidado,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		req, err := service.UpdateRecipientData(context.Background(), 5, 1, identity)
		assert.NoError(t, err)
		assert.Equal(t, "María", req.RecipientName)
	})

	t.Run("Too early in the lifecycle", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashPendiente,
		}, nil)

		_, err := service.UpdateRecipientData(context.Background(), 5, 1, identity)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("Bounce requires a reason", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashEnEsperaConfirmacion,
		}, nil)

		_, err := service.UpdateStatus(context.Background(), 9, 5, status.CashRebotado, "", nil)
		assert.ErrorIs(t, err, ErrRejectionRequired)
	})

	t.Run("Bounce stores the reason", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashEnEsperaConfirmacion,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "cash_express", 5, status.CashRebotado, status.CashEnEsperaConfirmacion)

		req, err := service.UpdateStatus(context.Background(), 9, 5, status.CashRebotado, "Comprobante ilegible", nil)
		assert.NoError(t, err)
		assert.Equal(t, status.CashRebotado, req.Status)
		assert.Equal(t, "Comprobante ilegible", req.RejectionReason)
	})

	t.Run("Validation stamps the deposit and defaults availability to the estimate", func(t *testing.T) {
		service, m := NewMock(t)
		estimate := testNow.AddDate(0, 0, 2)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashEnEsperaConfirmacion, EstimatedDelivery: &estimate,
		}, nil)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "cash_express", 5, status.CashDepositoValidado, status.CashEnEsperaConfirmacion)

		req, err := service.UpdateStatus(context.Background(), 9, 5, status.CashDepositoValidado, "", nil)
		assert.NoError(t, err)
		assert.Equal(t, status.CashDepositoValidado, req.Status)
		assert.Equal(t, testNow, *req.DepositValidatedAt)
		assert.Equal(t, estimate, *req.AvailableFrom)
	})

	t.Run("Skipping the review queue is illegal", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Status: status.CashPendiente,
		}, nil)

		_, err := service.UpdateStatus(context.Background(), 9, 5, status.CashEntregado, "", nil)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.UpdateStatus(context.Background(), 9, 5, "PAGADO", "", nil)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Delivery debits the principal and appends one history row", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Amount: 300, Commission: 19.5, Status: status.CashDepositoValidado, Folio: "CE-X",
		}, nil)
		passthroughTx(m)
		m.configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(defaultConfig(), nil)
		m.configRepo.EXPECT().UpdateBalance(gomock.Any(), 4700.0).Return(nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, h *domain.BalanceHistory) error {
				assert.Equal(t, -300.0, h.Amount)
				assert.Equal(t, 5000.0, h.PreviousBalance)
				assert.Equal(t, 4700.0, h.NewBalance)
				assert.Equal(t, 9, h.UserID)
				if assert.NotNil(t, h.RequestID) {
					assert.Equal(t, 5, *h.RequestID)
				}
				return nil
			},
		)
		m.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "cash_express", 5, status.CashEntregado, status.CashDepositoValidado)

		req, err := service.UpdateStatus(context.Background(), 9, 5, status.CashEntregado, "", nil)
		assert.NoError(t, err)
		assert.Equal(t, status.CashEntregado, req.Status)
		assert.NotNil(t, req.DeliveredAt)
	})

	t.Run("Insufficient funds leaves the request untouched", func(t *testing.T) {
		service, m := NewMock(t)
		m.repo.EXPECT().FindByID(gomock.Any(), 5).Return(&domain.CashExpressRequest{
			ID: 5, UserID: 1, Amount: 300, Status: status.CashDepositoValidado,
		}, nil)
		passthroughTx(m)
		cfg := defaultConfig()
		cfg.AvailableBalance = 100
		m.configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(cfg, nil)

		_, err := service.UpdateStatus(context.Background(), 9, 5, status.CashEntregado, "", nil)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})
}

func TestAddBalance(t *testing.T) {
	t.Run("Positive deposit is recorded with an audit row", func(t *testing.T) {
		service, m := NewMock(t)
		passthroughTx(m)
		m.configRepo.EXPECT().GetForUpdate(gomock.Any()).Return(defaultConfig(), nil)
		m.configRepo.EXPECT().UpdateBalance(gomock.Any(), 6500.0).Return(nil)
		m.history.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		entry, err := service.AddBalance(context.Background(), 9, 1500, "")
		assert.NoError(t, err)
		assert.Equal(t, 5000.0, entry.PreviousBalance)
		assert.Equal(t, 6500.0, entry.NewBalance)
		assert.Equal(t, "Abono de saldo", entry.Description)
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		service, _ := NewMock(t)
		_, err := service.AddBalance(context.Background(), 9, 0, "x")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestGetBalanceHistory(t *testing.T) {
	service, m := NewMock(t)
	m.history.EXPECT().List(gomock.Any(), 50, 0).Return([]domain.BalanceHistory{{ID: 1}}, nil)
	m.history.EXPECT().Count(gomock.Any()).Return(1, nil)

	history, total, err := service.GetBalanceHistory(context.Background(), 0, -3)
	assert.NoError(t, err)
	assert.Len(t, history, 1)
	assert.Equal(t, 1, total)
}

func TestCalculateAvailability(t *testing.T) {
	t.Run("Covered by the current balance", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(defaultConfig(), nil)
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(1000.0, 2, nil)

		avail, err := service.CalculateAvailability(context.Background(), 500)
		assert.NoError(t, err)
		assert.True(t, avail.IsAvailableNow)
		assert.Equal(t, testNow, avail.Date)
		assert.Equal(t, 2, avail.PendingRequests)
	})

	t.Run("Pending requests count against the balance", func(t *testing.T) {
		service, m := NewMock(t)
		cfg := defaultConfig()
		cfg.AvailableBalance = 0
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(cfg, nil)
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil)

		// 1000 short at 500 a day is two working days: Tuesday and Wednesday.
		avail, err := service.CalculateAvailability(context.Background(), 1000)
		assert.NoError(t, err)
		assert.False(t, avail.IsAvailableNow)
		assert.Equal(t, testNow.AddDate(0, 0, 2), avail.Date)
	})

	t.Run("Weekends are skipped", func(t *testing.T) {
		service, m := NewMock(t)
		cfg := defaultConfig()
		cfg.AvailableBalance = 0
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(cfg, nil)
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil)

		// Five working days from a Monday lands on the next Monday.
		avail, err := service.CalculateAvailability(context.Background(), 2500)
		assert.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 7), avail.Date)
	})

	t.Run("Holidays are skipped", func(t *testing.T) {
		service, m := NewMock(t)
		cfg := defaultConfig()
		cfg.AvailableBalance = 0
		cfg.Holidays = []string{testNow.AddDate(0, 0, 1).Format("2006-01-02")}
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(cfg, nil)
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil)

		avail, err := service.CalculateAvailability(context.Background(), 500)
		assert.NoError(t, err)
		assert.Equal(t, testNow.AddDate(0, 0, 2), avail.Date)
	})

	t.Run("Config lookup failure is surfaced", func(t *testing.T) {
		service, m := NewMock(t)
		m.configRepo.EXPECT().GetOrCreate(gomock.Any()).Return(nil, errors.New("some error"))
		m.repo.EXPECT().PendingSummary(gomock.Any()).Return(0.0, 0, nil).AnyTimes()

		_, err := service.CalculateAvailability(context.Background(), 500)
		assert.Error(t, err)
	})
}
