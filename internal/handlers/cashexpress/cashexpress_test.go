package cashexpress

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/dto"
	"github.com/mariamstore/backend/internal/service/cashservice"
	"github.com/mariamstore/backend/internal/service/configservice"
	"github.com/mariamstore/backend/internal/status"
	"github.com/mariamstore/backend/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CashExpressHandler, *MockService, *MockConfigService) {
	ctrl := gomock.NewController(t)
	cashService := NewMockService(ctrl)
	configService := NewMockConfigService(ctrl)
	handler := New(cashService, configService)
	defer ctrl.Finish()
	return handler, cashService, configService
}

func authedRequest(method, target, body string, userID int, role string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, userID)
	ctx = context.WithValue(ctx, auth.RoleKey, role)
	return r.WithContext(ctx)
}

func withRequestID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateRequestHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Commission comes back computed", func(t *testing.T) {
		cashService.EXPECT().
			CreateRequest(gomock.Any(), 1, cashservice.CreateRequestInput{Amount: 100}).
			Return(&domain.CashExpressRequest{
				ID: 5, Folio: "CE-1", UserID: 1, Amount: 100, Commission: 6.5, TotalToDeposit: 107,
				Status: status.CashPendiente,
			}, nil)

		r := authedRequest(http.MethodPost, "/api/cash-express/requests", `{"amount":100}`, 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		var body dto.CashRequestResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, 107.0, body.TotalToDeposit)
		assert.Equal(t, status.CashPendiente, body.Status)
	})

	t.Run("Amount above the configured cap", func(t *testing.T) {
		cashService.EXPECT().
			CreateRequest(gomock.Any(), 1, cashservice.CreateRequestInput{Amount: 99999}).
			Return(nil, cashservice.ErrAmountOutOfRange)

		r := authedRequest(http.MethodPost, "/api/cash-express/requests", `{"amount":99999}`, 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Invalid request body", func(t *testing.T) {
		r := authedRequest(http.MethodPost, "/api/cash-express/requests", "not json", 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.CreateRequest(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid request body")
	})
}

func TestGetRequestsHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	cashService.EXPECT().
		GetRequests(gomock.Any(), 9, true, status.CashEnEsperaConfirmacion).
		Return([]domain.CashExpressRequest{{ID: 5, Folio: "CE-1"}}, nil)

	r := authedRequest(http.MethodGet, "/api/cash-express/requests?status="+status.CashEnEsperaConfirmacion, "", 9, auth.RoleAdmin)
	w := httptest.NewRecorder()

	handler.GetRequests(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.CashRequestResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
}

func TestGetRequestHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Not found", func(t *testing.T) {
		cashService.EXPECT().
			GetRequest(gomock.Any(), 404, 1, false).
			Return(nil, cashservice.ErrRequestNotFound)

		r := withRequestID(authedRequest(http.MethodGet, "/api/cash-express/requests/404", "", 1, auth.RoleCliente), "404")
		w := httptest.NewRecorder()

		handler.GetRequest(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Foreign request is forbidden", func(t *testing.T) {
		cashService.EXPECT().
			GetRequest(gomock.Any(), 5, 2, false).
			Return(nil, cashservice.ErrForbidden)

		r := withRequestID(authedRequest(http.MethodGet, "/api/cash-express/requests/5", "", 2, auth.RoleCliente), "5")
		w := httptest.NewRecorder()

		handler.GetRequest(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUploadDepositReceiptHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Receipt stored", func(t *testing.T) {
		cashService.EXPECT().
			UploadDepositReceipt(gomock.Any(), 5, 1, "uploads/dep-5.jpg").
			Return(&domain.CashExpressRequest{ID: 5, Status: status.CashPendiente}, nil)

		body := `{"deposit_receipt":"uploads/dep-5.jpg"}`
		r := withRequestID(authedRequest(http.MethodPut, "/api/cash-express/requests/5/receipt", body, 1, auth.RoleCliente), "5")
		w := httptest.NewRecorder()

		handler.UploadDepositReceipt(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Validated deposit refuses a new receipt", func(t *testing.T) {
		cashService.EXPECT().
			UploadDepositReceipt(gomock.Any(), 5, 1, "uploads/dep-5.jpg").
			Return(nil, cashservice.ErrInvalidState)

		body := `{"deposit_receipt":"uploads/dep-5.jpg"}`
		r := withRequestID(authedRequest(http.MethodPut, "/api/cash-express/requests/5/receipt", body, 1, auth.RoleCliente), "5")
		w := httptest.NewRecorder()

		handler.UploadDepositReceipt(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestConfirmDepositReceiptHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Moves to waiting for validation", func(t *testing.T) {
		cashService.EXPECT().
			ConfirmDepositReceipt(gomock.Any(), 5, 1).
			Return(&domain.CashExpressRequest{ID: 5, Status: status.CashEnEsperaConfirmacion}, nil)

		r := withRequestID(authedRequest(http.MethodPost, "/api/cash-express/requests/5/confirm-deposit", "", 1, auth.RoleCliente), "5")
		w := httptest.NewRecorder()

		handler.ConfirmDepositReceipt(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("No receipt attached", func(t *testing.T) {
		cashService.EXPECT().
			ConfirmDepositReceipt(gomock.Any(), 5, 1).
			Return(nil, cashservice.ErrNoReceiptToConfirm)

		r := withRequestID(authedRequest(http.MethodPost, "/api/cash-express/requests/5/confirm-deposit", "", 1, auth.RoleCliente), "5")
		w := httptest.NewRecorder()

		handler.ConfirmDepositReceipt(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Deposit validated", func(t *testing.T) {
		cashService.EXPECT().
			UpdateStatus(gomock.Any(), 9, 5, status.CashDepositoValidado, "", nil).
			Return(&domain.CashExpressRequest{ID: 5, Status: status.CashDepositoValidado}, nil)

		body := `{"status":"` + status.CashDepositoValidado + `"}`
		r := withRequestID(authedRequest(http.MethodPut, "/api/cash-express/requests/5/status", body, 9, auth.RoleAdmin), "5")
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Bounce without a reason", func(t *testing.T) {
		cashService.EXPECT().
			UpdateStatus(gomock.Any(), 9, 5, status.CashRebotado, "", nil).
			Return(nil, cashservice.ErrRejectionRequired)

		body := `{"status":"` + status.CashRebotado + `"}`
		r := withRequestID(authedRequest(http.MethodPut, "/api/cash-express/requests/5/status", body, 9, auth.RoleAdmin), "5")
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delivery with an empty drawer", func(t *testing.T) {
		cashService.EXPECT().
			UpdateStatus(gomock.Any(), 9, 5, status.CashEntregado, "", nil).
			Return(nil, cashservice.ErrInsufficientFunds)

		body := `{"status":"` + status.CashEntregado + `"}`
		r := withRequestID(authedRequest(http.MethodPut, "/api/cash-express/requests/5/status", body, 9, auth.RoleAdmin), "5")
		w := httptest.NewRecorder()

		handler.UpdateStatus(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), cashservice.ErrInsufficientFunds.Error())
	})
}

func TestGetAvailabilityHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Available now", func(t *testing.T) {
		date := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		cashService.EXPECT().
			CalculateAvailability(gomock.Any(), 300.0).
			Return(&cashservice.Availability{Date: date, IsAvailableNow: true, PendingRequests: 2}, nil)

		r := authedRequest(http.MethodGet, "/api/cash-express/availability?amount=300", "", 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.GetAvailability(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.AvailabilityResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.True(t, body.IsAvailableNow)
		assert.Equal(t, "El monto está disponible para entrega inmediata", body.Message)
	})

	t.Run("Missing amount", func(t *testing.T) {
		r := authedRequest(http.MethodGet, "/api/cash-express/availability", "", 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.GetAvailability(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid amount")
	})
}

func TestAddBalanceHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	t.Run("Deposit registered", func(t *testing.T) {
		cashService.EXPECT().
			AddBalance(gomock.Any(), 9, 1500.0, "Corte de caja").
			Return(&domain.BalanceHistory{PreviousBalance: 5000, Amount: 1500, NewBalance: 6500}, nil)

		body := `{"amount":1500,"description":"Corte de caja"}`
		r := authedRequest(http.MethodPost, "/api/cash-express/balance", body, 9, auth.RoleAdmin)
		w := httptest.NewRecorder()

		handler.AddBalance(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.AddBalanceResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, 6500.0, resp.NewBalance)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		cashService.EXPECT().
			AddBalance(gomock.Any(), 9, -5.0, "").
			Return(nil, cashservice.ErrInvalidAmount)

		r := authedRequest(http.MethodPost, "/api/cash-express/balance", `{"amount":-5}`, 9, auth.RoleAdmin)
		w := httptest.NewRecorder()

		handler.AddBalance(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBalanceHistoryHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	cashService.EXPECT().
		GetBalanceHistory(gomock.Any(), 0, 0).
		Return([]domain.BalanceHistory{{ID: 1, Amount: 1500}}, 1, nil)

	r := authedRequest(http.MethodGet, "/api/cash-express/balance/history", "", 9, auth.RoleAdmin)
	w := httptest.NewRecorder()

	handler.GetBalanceHistory(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.BalanceHistoryResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 50, body.Limit)
	assert.Len(t, body.History, 1)
}

func TestGetCurrentBalanceHandler(t *testing.T) {
	handler, cashService, _ := NewMock(t)

	cashService.EXPECT().
		GetCurrentBalance(gomock.Any()).
		Return(&domain.CashExpressConfig{AvailableBalance: 5000, DailyMinimumDeposit: 500}, nil)

	r := authedRequest(http.MethodGet, "/api/cash-express/balance", "", 9, auth.RoleAdmin)
	w := httptest.NewRecorder()

	handler.GetCurrentBalance(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.CurrentBalanceResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 5000.0, body.AvailableBalance)
}

func TestConfigHandlers(t *testing.T) {
	handler, _, configService := NewMock(t)

	t.Run("Get config", func(t *testing.T) {
		configService.EXPECT().
			GetConfig(gomock.Any()).
			Return(&domain.CashExpressConfig{ServiceDays: []int{1, 2, 3, 4, 5}, MaxAmount: 1000}, nil)

		r := authedRequest(http.MethodGet, "/api/cash-express/config", "", 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.GetConfig(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Update config rejects a bad window", func(t *testing.T) {
		configService.EXPECT().
			UpdateConfig(gomock.Any(), gomock.Any()).
			Return(nil, configservice.ErrInvalidTimeRange)

		body := `{"service_days":[1],"start_time":"20:00","end_time":"09:00"}`
		r := authedRequest(http.MethodPut, "/api/cash-express/config", body, 9, auth.RoleAdmin)
		w := httptest.NewRecorder()

		handler.UpdateConfig(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBankAccountHandlers(t *testing.T) {
	handler, _, configService := NewMock(t)

	t.Run("Clients only see active accounts", func(t *testing.T) {
		configService.EXPECT().
			GetBankAccounts(gomock.Any(), true).
			Return([]domain.BankAccount{{ID: 1, Beneficiary: "Mariam Store", IsActive: true}}, nil)

		r := authedRequest(http.MethodGet, "/api/cash-express/bank-accounts?all=true", "", 1, auth.RoleCliente)
		w := httptest.NewRecorder()

		handler.GetBankAccounts(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin can list everything", func(t *testing.T) {
		configService.EXPECT().
			GetBankAccounts(gomock.Any(), false).
			Return([]domain.BankAccount{}, nil)

		r := authedRequest(http.MethodGet, "/api/cash-express/bank-accounts?all=true", "", 9, auth.RoleAdmin)
		w := httptest.NewRecorder()

		handler.GetBankAccounts(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Create rejects a bad card number", func(t *testing.T) {
		configService.EXPECT().
			CreateBankAccount(gomock.Any(), gomock.Any()).
			Return(nil, configservice.ErrInvalidAccountNumber)

		body := `{"beneficiary":"Mariam Store","account_number":"4242424242424241"}`
		r := authedRequest(http.MethodPost, "/api/cash-express/bank-accounts", body, 9, auth.RoleAdmin)
		w := httptest.NewRecorder()

		handler.CreateBankAccount(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Delete missing account", func(t *testing.T) {
		configService.EXPECT().
			DeleteBankAccount(gomock.Any(), 99).
			Return(configservice.ErrBankAccountNotFound)

		r := withRequestID(authedRequest(http.MethodDelete, "/api/cash-express/bank-accounts/99", "", 9, auth.RoleAdmin), "99")
		w := httptest.NewRecorder()

		handler.DeleteBankAccount(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
