package cashexpress

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/dto"
	"github.com/mariamstore/backend/internal/service/cashservice"
	"github.com/mariamstore/backend/internal/service/configservice"
	"github.com/mariamstore/backend/internal/status"
	"github.com/mariamstore/backend/pkg/auth"
	"github.com/mariamstore/backend/pkg/utils"
)

type Service interface {
	CreateRequest(ctx context.Context, userID int, in cashservice.CreateRequestInput) (*domain.CashExpressRequest, error)
	GetRequest(ctx context.Context, id, userID int, isAdmin bool) (*domain.CashExpressRequest, error)
	GetRequests(ctx context.Context, userID int, isAdmin bool, statusFilter string) ([]domain.CashExpressRequest, error)
	UploadDepositReceipt(ctx context.Context, id, userID int, receiptURL string) (*domain.CashExpressRequest, error)
	ConfirmDepositReceipt(ctx context.Context, id, userID int) (*domain.CashExpressRequest, error)
	UploadSignedReceipt(ctx context.Context, id int, signedURL string) (*domain.CashExpressRequest, error)
	UpdateRecipientData(ctx context.Context, id, userID int, in cashservice.CreateRequestInput) (*domain.CashExpressRequest, error)
	UpdateStatus(ctx context.Context, adminID, id int, newStatus, rejectionReason string, availableFrom *time.Time) (*domain.CashExpressRequest, error)
	AddBalance(ctx context.Context, userID int, amount float64, description string) (*domain.BalanceHistory, error)
	GetBalanceHistory(ctx context.Context, limit, offset int) ([]domain.BalanceHistory, int, error)
	GetCurrentBalance(ctx context.Context) (*domain.CashExpressConfig, error)
	CalculateAvailability(ctx context.Context, amount float64) (*cashservice.Availability, error)
}

type ConfigService interface {
	GetConfig(ctx context.Context) (*domain.CashExpressConfig, error)
	UpdateConfig(ctx context.Context, in configservice.UpdateConfigInput) (*domain.CashExpressConfig, error)
	GetBankAccounts(ctx context.Context, activeOnly bool) ([]domain.BankAccount, error)
	CreateBankAccount(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error)
	UpdateBankAccount(ctx context.Context, acc *domain.BankAccount) (*domain.BankAccount, error)
	DeleteBankAccount(ctx context.Context, id int) error
}

type CashExpressHandler struct {
	cashService   Service
	configService ConfigService
}

func New(cashService Service, configService ConfigService) *CashExpressHandler {
	return &CashExpressHandler{
		cashService:   cashService,
		configService: configService,
	}
}

func requestID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toResponse(req *domain.CashExpressRequest) dto.CashRequestResponseDTO {
	return dto.CashRequestResponseDTO{
		ID:                 req.ID,
		Folio:              req.Folio,
		UserID:             req.UserID,
		Amount:             req.Amount,
		Commission:         req.Commission,
		TotalToDeposit:     req.TotalToDeposit,
		Status:             req.Status,
		SenderName:         req.SenderName,
		SenderPhone:        req.SenderPhone,
		RecipientName:      req.RecipientName,
		RecipientPhone:     req.RecipientPhone,
		Relationship:       req.Relationship,
		DepositReceipt:     req.DepositReceipt,
		SignedReceipt:      req.SignedReceipt,
		RejectionReason:    req.RejectionReason,
		EstimatedDelivery:  req.EstimatedDelivery,
		ReceiptSentAt:      req.ReceiptSentAt,
		DepositValidatedAt: req.DepositValidatedAt,
		AvailableFrom:      req.AvailableFrom,
		DeliveredAt:        req.DeliveredAt,
		CreatedAt:          req.CreatedAt,
	}
}

func toConfigDTO(cfg *domain.CashExpressConfig) dto.CashConfigDTO {
	return dto.CashConfigDTO{
		ServiceDays:          cfg.ServiceDays,
		StartTime:            cfg.StartTime,
		EndTime:              cfg.EndTime,
		Holidays:             cfg.Holidays,
		NonWorkingDayMessage: cfg.NonWorkingDayMessage,
		AvailableBalance:     cfg.AvailableBalance,
		DailyMinimumDeposit:  cfg.DailyMinimumDeposit,
		MaxAmount:            cfg.MaxAmount,
		CommissionPercentage: cfg.CommissionPercentage,
	}
}

func toBankAccountDTO(acc *domain.BankAccount) dto.BankAccountDTO {
	return dto.BankAccountDTO{
		ID:            acc.ID,
		Beneficiary:   acc.Beneficiary,
		AccountNumber: acc.AccountNumber,
		CLABE:         acc.CLABE,
		DisplayOrder:  acc.DisplayOrder,
		IsActive:      acc.IsActive,
	}
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cashservice.ErrRequestNotFound),
		errors.Is(err, configservice.ErrBankAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, cashservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, cashservice.ErrFolioConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, cashservice.ErrAmountOutOfRange),
		errors.Is(err, cashservice.ErrInvalidAmount),
		errors.Is(err, cashservice.ErrInvalidStatus),
		errors.Is(err, cashservice.ErrInvalidState),
		errors.Is(err, cashservice.ErrReceiptRequired),
		errors.Is(err, cashservice.ErrNoReceiptToConfirm),
		errors.Is(err, cashservice.ErrRejectionRequired),
		errors.Is(err, cashservice.ErrIdentityIncomplete),
		errors.Is(err, cashservice.ErrInsufficientFunds),
		errors.Is(err, status.ErrInvalidTransition),
		errors.Is(err, configservice.ErrServiceDaysRequired),
		errors.Is(err, configservice.ErrInvalidServiceDay),
		errors.Is(err, configservice.ErrInvalidTimeFormat),
		errors.Is(err, configservice.ErrInvalidTimeRange),
		errors.Is(err, configservice.ErrInvalidHoliday),
		errors.Is(err, configservice.ErrInvalidDeposit),
		errors.Is(err, configservice.ErrInvalidMaxAmount),
		errors.Is(err, configservice.ErrInvalidCommission),
		errors.Is(err, configservice.ErrBeneficiaryRequired),
		errors.Is(err, configservice.ErrInvalidAccountNumber),
		errors.Is(err, configservice.ErrInvalidCLABE):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateRequest godoc
//
//	@Summary		Create a cash pickup request
//	@Description	The commission and total to deposit are computed from the current configuration; the total is rounded up to a whole unit.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateCashRequestDTO	true	"Request payload"
//	@Success		201		{object}	dto.CashRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Amount out of range"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/cash-express/requests [post]
func (h *CashExpressHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCashRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.cashService.CreateRequest(r.Context(), auth.UserID(r.Context()), cashservice.CreateRequestInput{
		Amount:         req.Amount,
		SenderName:     req.SenderName,
		SenderPhone:    req.SenderPhone,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Relationship:   req.Relationship,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(created))
}

// GetRequests godoc
//
//	@Summary	List cash pickup requests
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		status	query		string	false	"Status filter"
//	@Success	200		{array}		dto.CashRequestResponseDTO
//	@Failure	401		{object}	utils.Response	"User not authorized"
//	@Router		/api/cash-express/requests [get]
func (h *CashExpressHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.cashService.GetRequests(r.Context(), auth.UserID(r.Context()), auth.IsAdmin(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.CashRequestResponseDTO, 0, len(requests))
	for i := range requests {
		response = append(response, toResponse(&requests[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetRequest godoc
//
//	@Summary	Get a single cash pickup request
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Request id"
//	@Success	200	{object}	dto.CashRequestResponseDTO
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Request not found"
//	@Router		/api/cash-express/requests/{id} [get]
func (h *CashExpressHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	req, err := h.cashService.GetRequest(r.Context(), id, auth.UserID(r.Context()), auth.IsAdmin(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(req))
}

// UploadDepositReceipt godoc
//
//	@Summary		Attach a deposit receipt
//	@Description	Stores the receipt reference without changing the request status; re-uploading after a bounce clears the rejection reason.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request id"
//	@Param			request	body		dto.UploadReceiptRequestDTO	true	"Receipt reference"
//	@Success		200		{object}	dto.CashRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Receipt not accepted in current status"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Router			/api/cash-express/requests/{id}/receipt [put]
func (h *CashExpressHandler) UploadDepositReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.UploadReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.cashService.UploadDepositReceipt(r.Context(), id, auth.UserID(r.Context()), req.DepositReceipt)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(updated))
}

// ConfirmDepositReceipt godoc
//
//	@Summary		Submit the deposit for validation
//	@Description	Moves the request to EN_ESPERA_CONFIRMACION once a receipt is attached.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Request id"
//	@Success		200	{object}	dto.CashRequestResponseDTO
//	@Failure		400	{object}	utils.Response	"No receipt attached or wrong status"
//	@Failure		404	{object}	utils.Response	"Request not found"
//	@Router			/api/cash-express/requests/{id}/confirm-deposit [post]
func (h *CashExpressHandler) ConfirmDepositReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	updated, err := h.cashService.ConfirmDepositReceipt(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(updated))
}

// UploadSignedReceipt godoc
//
//	@Summary	Attach the signed pickup receipt
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Request id"
//	@Param		request	body		dto.UploadSignedReceiptRequestDTO	true	"Signed receipt reference"
//	@Success	200		{object}	dto.CashRequestResponseDTO
//	@Failure	400		{object}	utils.Response	"Deposit not validated yet"
//	@Failure	404		{object}	utils.Response	"Request not found"
//	@Router		/api/cash-express/requests/{id}/signed-receipt [put]
func (h *CashExpressHandler) UploadSignedReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.UploadSignedReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.cashService.UploadSignedReceipt(r.Context(), id, req.SignedReceipt)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(updated))
}

// UpdateRecipientData godoc
//
//	@Summary		Fill in sender and recipient data
//	@Description	The owner completes pickup identity data after the deposit is validated; all five fields are required.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request id"
//	@Param			request	body		dto.RecipientDataRequestDTO	true	"Identity data"
//	@Success		200		{object}	dto.CashRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Incomplete data or wrong status"
//	@Failure		403		{object}	utils.Response	"Not the owner"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Router			/api/cash-express/requests/{id}/recipient [put]
func (h *CashExpressHandler) UpdateRecipientData(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.RecipientDataRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.cashService.UpdateRecipientData(r.Context(), id, auth.UserID(r.Context()), cashservice.CreateRequestInput{
		SenderName:     req.SenderName,
		SenderPhone:    req.SenderPhone,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Relationship:   req.Relationship,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(updated))
}

// UpdateStatus godoc
//
//	@Summary		Advance a cash request
//	@Description	Admin moves the request along the lifecycle. REBOTADO requires a rejection reason; ENTREGADO debits the drawer balance atomically.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request id"
//	@Param			request	body		dto.UpdateCashStatusRequestDTO	true	"Target status"
//	@Success		200		{object}	dto.CashRequestResponseDTO
//	@Failure		400		{object}	utils.Response	"Illegal transition or insufficient funds"
//	@Failure		404		{object}	utils.Response	"Request not found"
//	@Router			/api/cash-express/requests/{id}/status [put]
func (h *CashExpressHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.UpdateCashStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.cashService.UpdateStatus(r.Context(), auth.UserID(r.Context()), id, req.Status, req.RejectionReason, req.AvailableFrom)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(updated))
}

// GetAvailability godoc
//
//	@Summary		Estimate pickup availability
//	@Description	Computes when the requested amount could be paid out given the drawer balance, pending requests and the service calendar.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Produce		json
//	@Param			amount	query		number	true	"Requested amount"
//	@Success		200		{object}	dto.AvailabilityResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Router			/api/cash-express/availability [get]
func (h *CashExpressHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil || amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid amount")
		return
	}

	avail, err := h.cashService.CalculateAvailability(r.Context(), amount)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	message := "El monto no está disponible de inmediato"
	if avail.IsAvailableNow {
		message = "El monto está disponible para entrega inmediata"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AvailabilityResponseDTO{
		EstimatedDeliveryDate: avail.Date,
		IsAvailableNow:        avail.IsAvailableNow,
		PendingRequests:       avail.PendingRequests,
		Message:               message,
	})
}

// AddBalance godoc
//
//	@Summary	Register a cash deposit into the drawer
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.AddBalanceRequestDTO	true	"Deposit payload"
//	@Success	200		{object}	dto.AddBalanceResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid amount"
//	@Router		/api/cash-express/balance [post]
func (h *CashExpressHandler) AddBalance(w http.ResponseWriter, r *http.Request) {
	var req dto.AddBalanceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.cashService.AddBalance(r.Context(), auth.UserID(r.Context()), req.Amount, req.Description)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AddBalanceResponseDTO{
		PreviousBalance: entry.PreviousBalance,
		Amount:          entry.Amount,
		NewBalance:      entry.NewBalance,
	})
}

// GetBalanceHistory godoc
//
//	@Summary	List drawer balance movements
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		limit	query		int	false	"Page size (max 200)"
//	@Param		offset	query		int	false	"Offset"
//	@Success	200		{object}	dto.BalanceHistoryResponseDTO
//	@Router		/api/cash-express/balance/history [get]
func (h *CashExpressHandler) GetBalanceHistory(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	history, total, err := h.cashService.GetBalanceHistory(r.Context(), limit, offset)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	entries := make([]dto.BalanceHistoryEntryDTO, 0, len(history))
	for _, h := range history {
		entries = append(entries, dto.BalanceHistoryEntryDTO{
			ID:              h.ID,
			Amount:          h.Amount,
			PreviousBalance: h.PreviousBalance,
			NewBalance:      h.NewBalance,
			Description:     h.Description,
			UserID:          h.UserID,
			RequestID:       h.RequestID,
			CreatedAt:       h.CreatedAt,
		})
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceHistoryResponseDTO{
		History: entries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

// GetCurrentBalance godoc
//
//	@Summary	Get the current drawer balance
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CurrentBalanceResponseDTO
//	@Router		/api/cash-express/balance [get]
func (h *CashExpressHandler) GetCurrentBalance(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.cashService.GetCurrentBalance(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CurrentBalanceResponseDTO{
		AvailableBalance:    cfg.AvailableBalance,
		DailyMinimumDeposit: cfg.DailyMinimumDeposit,
	})
}

// GetConfig godoc
//
//	@Summary	Get the Cash Express configuration
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.CashConfigDTO
//	@Router		/api/cash-express/config [get]
func (h *CashExpressHandler) GetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.configService.GetConfig(r.Context())
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toConfigDTO(cfg))
}

// UpdateConfig godoc
//
//	@Summary		Update the Cash Express configuration
//	@Description	Validates service days, the HH:MM service window, holiday dates and the amount limits before persisting.
//	@Tags			CashExpress
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateCashConfigRequestDTO	true	"Configuration"
//	@Success		200		{object}	dto.CashConfigDTO
//	@Failure		400		{object}	utils.Response	"Invalid configuration"
//	@Router			/api/cash-express/config [put]
func (h *CashExpressHandler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCashConfigRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cfg, err := h.configService.UpdateConfig(r.Context(), configservice.UpdateConfigInput{
		ServiceDays:          req.ServiceDays,
		StartTime:            req.StartTime,
		EndTime:              req.EndTime,
		Holidays:             req.Holidays,
		NonWorkingDayMessage: req.NonWorkingDayMessage,
		DailyMinimumDeposit:  req.DailyMinimumDeposit,
		MaxAmount:            req.MaxAmount,
		CommissionPercentage: req.CommissionPercentage,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toConfigDTO(cfg))
}

// GetBankAccounts godoc
//
//	@Summary	List deposit bank accounts
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		all	query		bool	false	"Include inactive accounts (admin)"
//	@Success	200	{array}		dto.BankAccountDTO
//	@Router		/api/cash-express/bank-accounts [get]
func (h *CashExpressHandler) GetBankAccounts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") != "true" || !auth.IsAdmin(r.Context())

	accounts, err := h.configService.GetBankAccounts(r.Context(), activeOnly)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.BankAccountDTO, 0, len(accounts))
	for i := range accounts {
		response = append(response, toBankAccountDTO(&accounts[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CreateBankAccount godoc
//
//	@Summary	Add a deposit bank account
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.BankAccountDTO	true	"Account payload"
//	@Success	201		{object}	dto.BankAccountDTO
//	@Failure	400		{object}	utils.Response	"Invalid account data"
//	@Router		/api/cash-express/bank-accounts [post]
func (h *CashExpressHandler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.BankAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.configService.CreateBankAccount(r.Context(), &domain.BankAccount{
		Beneficiary:   req.Beneficiary,
		AccountNumber: req.AccountNumber,
		CLABE:         req.CLABE,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toBankAccountDTO(created))
}

// UpdateBankAccount godoc
//
//	@Summary	Update a deposit bank account
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"Account id"
//	@Param		request	body		dto.BankAccountDTO	true	"Account payload"
//	@Success	200		{object}	dto.BankAccountDTO
//	@Failure	400		{object}	utils.Response	"Invalid account data"
//	@Failure	404		{object}	utils.Response	"Account not found"
//	@Router		/api/cash-express/bank-accounts/{id} [put]
func (h *CashExpressHandler) UpdateBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req dto.BankAccountDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.configService.UpdateBankAccount(r.Context(), &domain.BankAccount{
		ID:            id,
		Beneficiary:   req.Beneficiary,
		AccountNumber: req.AccountNumber,
		CLABE:         req.CLABE,
		DisplayOrder:  req.DisplayOrder,
		IsActive:      req.IsActive,
	})
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBankAccountDTO(updated))
}

// DeleteBankAccount godoc
//
//	@Summary	Remove a deposit bank account
//	@Tags		CashExpress
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Account id"
//	@Success	200	{object}	utils.Response
//	@Failure	404	{object}	utils.Response	"Account not found"
//	@Router		/api/cash-express/bank-accounts/{id} [delete]
func (h *CashExpressHandler) DeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	id, err := requestID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if err := h.configService.DeleteBankAccount(r.Context(), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "bank account deleted"})
}
