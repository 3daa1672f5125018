package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/dto"
	orderservice "github.com/mariamstore/backend/internal/service/orderservice"
	"github.com/mariamstore/backend/internal/status"
	"github.com/mariamstore/backend/pkg/auth"
	"github.com/mariamstore/backend/pkg/utils"
)

type Service interface {
	CreateOrder(ctx context.Context, userID int, items []orderservice.NewItem, notes string, branchID *int) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID, userID int, isAdmin bool) (*domain.Order, error)
	GetOrders(ctx context.Context, userID int, isAdmin bool, statusFilter string) ([]domain.Order, error)
	ReviewAvailability(ctx context.Context, orderID int, decisions []orderservice.ItemDecision) (*domain.Order, error)
	ConfirmByCustomer(ctx context.Context, orderID, userID int) (*domain.Order, error)
	MarkAsReady(ctx context.Context, orderID int) (*domain.Order, error)
	CancelOrder(ctx context.Context, orderID, userID int, isAdmin bool) (*domain.Order, error)
	UpdateStatus(ctx context.Context, orderID int, newStatus string) (*domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

func orderID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func toResponse(order *domain.Order) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		ID:          order.ID,
		Folio:       order.Folio,
		UserID:      order.UserID,
		BranchID:    order.BranchID,
		Status:      order.Status,
		Total:       order.Total,
		Notes:       order.Notes,
		Items:       make([]dto.OrderItemResponseDTO, 0, len(order.Items)),
		CreatedAt:   order.CreatedAt,
		ConfirmedAt: order.ConfirmedAt,
		ReadyAt:     order.ReadyAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponseDTO{
			ID:                item.ID,
			ProductID:         item.ProductID,
			ProductName:       item.ProductName,
			Quantity:          item.Quantity,
			UnitPrice:         item.UnitPrice,
			IsAvailable:       item.IsAvailable,
			ConfirmedQuantity: item.ConfirmedQuantity,
			Subtotal:          item.Subtotal,
		})
	}
	return resp
}

func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderservice.ErrOrderNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrForbidden):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, orderservice.ErrEmptyOrder),
		errors.Is(err, orderservice.ErrInvalidItem),
		errors.Is(err, orderservice.ErrItemsMismatch),
		errors.Is(err, orderservice.ErrInvalidStatus),
		errors.Is(err, orderservice.ErrInvalidState),
		errors.Is(err, status.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, orderservice.ErrFolioConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CreateOrder godoc
//
//	@Summary		Create a pickup order
//	@Description	Create an order with at least one item; product name and price are snapshotted and the total is computed server-side.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order payload"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]orderservice.NewItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, orderservice.NewItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
		})
	}

	order, err := h.orderService.CreateOrder(r.Context(), userID, items, req.Notes, req.BranchID)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(order))
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	Clients see their own orders, admins all of them; optional status filter.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Status filter"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.GetOrders(r.Context(), auth.UserID(r.Context()), auth.IsAdmin(r.Context()), r.URL.Query().Get("status"))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		response = append(response, toResponse(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetOrder godoc
//
//	@Summary	Get a single order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.GetOrder(r.Context(), id, auth.UserID(r.Context()), auth.IsAdmin(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// ReviewAvailability godoc
//
//	@Summary		Review item availability
//	@Description	Admin confirms per-item availability; the decision list must cover every item of the order. Recomputes the total and advances the status.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order id"
//	@Param			request	body		dto.ReviewAvailabilityRequestDTO	true	"Availability decisions"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid payload or order not under review"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/availability [put]
func (h *OrderHandler) ReviewAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.ReviewAvailabilityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	decisions := make([]orderservice.ItemDecision, 0, len(req.Items))
	for _, it := range req.Items {
		decisions = append(decisions, orderservice.ItemDecision{
			ItemID:            it.ItemID,
			IsAvailable:       it.IsAvailable,
			ConfirmedQuantity: it.ConfirmedQuantity,
		})
	}

	order, err := h.orderService.ReviewAvailability(r.Context(), id, decisions)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// ConfirmOrder godoc
//
//	@Summary		Accept the reviewed order
//	@Description	The owner accepts the availability-adjusted order; it moves to IN_PREPARATION.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Order id"
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		400	{object}	utils.Response	"Illegal transition"
//	@Failure		403	{object}	utils.Response	"Not the owner"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/confirm [post]
func (h *OrderHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.ConfirmByCustomer(r.Context(), id, auth.UserID(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// MarkAsReady godoc
//
//	@Summary	Mark an order ready for pickup
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	400	{object}	utils.Response	"Illegal transition"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id}/ready [post]
func (h *OrderHandler) MarkAsReady(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.MarkAsReady(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// CancelOrder godoc
//
//	@Summary	Cancel an order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"Order id"
//	@Success	200	{object}	dto.OrderResponseDTO
//	@Failure	400	{object}	utils.Response	"Order is not cancellable"
//	@Failure	403	{object}	utils.Response	"Not the owner"
//	@Failure	404	{object}	utils.Response	"Order not found"
//	@Router		/api/orders/{id}/cancel [post]
func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	order, err := h.orderService.CancelOrder(r.Context(), id, auth.UserID(r.Context()), auth.IsAdmin(r.Context()))
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}

// UpdateStatus godoc
//
//	@Summary		Set order status directly
//	@Description	Coarse admin override; only enum membership is checked.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Order id"
//	@Param			request	body		dto.UpdateOrderStatusRequestDTO	true	"New status"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown status"
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Router			/api/orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req dto.UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(order))
}
