package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/status"
	"github.com/mariamstore/backend/pkg/folio"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAll(ctx context.Context, userID int, status string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	ApplyReview(ctx context.Context, order *domain.Order) error
}

type Notifier interface {
	NotifyStatusChange(ctx context.Context, userID int, domainType string, entityID int, newStatus, previousStatus string)
}

const notifyDomain = "order"

type Service struct {
	repo     Repo
	notifier Notifier
}

func New(repo Repo, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrForbidden     = errors.New("no permission for this order")
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	ErrInvalidItem   = errors.New("invalid order item")
	ErrItemsMismatch = errors.New("review must cover exactly the items of the order")
	ErrInvalidStatus = errors.New("invalid order status")
	ErrInvalidState  = errors.New("operation not allowed in current order status")
	ErrFolioConflict = errors.New("folio already exists")
)

type NewItem struct {
	ProductID   int
	ProductName string
	Quantity    int
	UnitPrice   float64
	Subtotal    float64
}

type ItemDecision struct {
	ItemID            int
	IsAvailable       bool
	ConfirmedQuantity *int
}

// CreateOrder persists a new order in UNDER_REVIEW with product name and
// price snapshotted per line. The total is always computed server-side.
func (s *Service) CreateOrder(ctx context.Context, userID int, items []NewItem, notes string, branchID *int) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}

	order := &domain.Order{
		Folio:    folio.New("ORD"),
		UserID:   userID,
		BranchID: branchID,
		Status:   status.OrderUnderReview,
		Notes:    notes,
	}
	for _, in := range items {
		if in.Quantity <= 0 || in.UnitPrice < 0 || in.ProductName == "" {
			return nil, fmt.Errorf("%w: product %q quantity %d", ErrInvalidItem, in.ProductName, in.Quantity)
		}
		subtotal := in.Subtotal
		if subtotal == 0 {
			subtotal = in.UnitPrice * float64(in.Quantity)
		}
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   in.ProductID,
			ProductName: in.ProductName,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Subtotal:    subtotal,
		})
		order.Total += subtotal
	}

	if err := s.repo.Save(ctx, order); err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrFolioConflict
		}
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID, userID int, isAdmin bool) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get order", zap.Error(err))
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && order.UserID != userID {
		return nil, ErrForbidden
	}
	return order, nil
}

// GetOrders lists orders: clients see only their own, admins everything.
func (s *Service) GetOrders(ctx context.Context, userID int, isAdmin bool, statusFilter string) ([]domain.Order, error) {
	if statusFilter != "" && !status.IsOrderStatus(statusFilter) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, statusFilter)
	}
	filterUser := userID
	if isAdmin {
		filterUser = 0
	}
	orders, err := s.repo.FindAll(ctx, filterUser, statusFilter)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

// ReviewAvailability applies the admin's per-item availability decisions. The
// decision list must cover exactly the items of the order. Unavailable items
// are zeroed, available ones get their confirmed quantity clamped to
// [0, ordered quantity]; the total is recomputed from the item subtotals. An
// order where every item survived untouched skips the customer acceptance
// step and goes straight to IN_PREPARATION.
func (s *Service) ReviewAvailability(ctx context.Context, orderID int, decisions []ItemDecision) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != status.OrderUnderReview {
		return nil, fmt.Errorf("%w: %s", ErrInvalidState, order.Status)
	}

	decisionByItem := make(map[int]ItemDecision, len(decisions))
	for _, d := range decisions {
		decisionByItem[d.ItemID] = d
	}
	if len(decisionByItem) != len(order.Items) {
		return nil, ErrItemsMismatch
	}
	for _, item := range order.Items {
		if _, ok := decisionByItem[item.ID]; !ok {
			return nil, ErrItemsMismatch
		}
	}

	total := 0.0
	allAvailable := true
	for i := range order.Items {
		item := &order.Items[i]
		d := decisionByItem[item.ID]

		qty := 0
		if d.IsAvailable {
			qty = item.Quantity
			if d.ConfirmedQuantity != nil {
				qty = *d.ConfirmedQuantity
			}
			if qty < 0 {
				qty = 0
			}
			if qty > item.Quantity {
				qty = item.Quantity
			}
		}

		available := d.IsAvailable
		item.IsAvailable = &available
		item.ConfirmedQuantity = &qty
		item.Subtotal = float64(qty) * item.UnitPrice
		total += item.Subtotal

		if !available || qty < item.Quantity {
			allAvailable = false
		}
	}

	previousStatus := order.Status
	newStatus := status.OrderPartiallyAvailable
	if allAvailable {
		newStatus = status.OrderInPreparation
	}
	if err := status.OrderTransition(order.Status, newStatus); err != nil {
		return nil, err
	}

	order.Total = total
	order.Status = newStatus
	if err := s.repo.ApplyReview(ctx, order); err != nil {
		zap.L().Error("failed to apply availability review", zap.Error(err))
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, order.UserID, notifyDomain, order.ID, newStatus, previousStatus)
	return order, nil
}

// ConfirmByCustomer is the owner accepting the reviewed order.
func (s *Service) ConfirmByCustomer(ctx context.Context, orderID, userID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.UserID != userID {
		return nil, ErrForbidden
	}
	if err := status.OrderTransition(order.Status, status.OrderInPreparation); err != nil {
		return nil, err
	}

	previousStatus := order.Status
	now := time.Now()
	order.Status = status.OrderInPreparation
	order.ConfirmedAt = &now
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, order.UserID, notifyDomain, order.ID, order.Status, previousStatus)
	return order, nil
}

func (s *Service) MarkAsReady(ctx context.Context, orderID int) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if err := status.OrderTransition(order.Status, status.OrderReadyForPickup); err != nil {
		return nil, err
	}

	previousStatus := order.Status
	now := time.Now()
	order.Status = status.OrderReadyForPickup
	order.ReadyAt = &now
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, order.UserID, notifyDomain, order.ID, order.Status, previousStatus)
	return order, nil
}

func (s *Service) CancelOrder(ctx context.Context, orderID, userID int, isAdmin bool) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !isAdmin && order.UserID != userID {
		return nil, ErrForbidden
	}
	if err := status.OrderTransition(order.Status, status.OrderCancelled); err != nil {
		return nil, err
	}

	previousStatus := order.Status
	order.Status = status.OrderCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, order.UserID, notifyDomain, order.ID, order.Status, previousStatus)
	return order, nil
}

// UpdateStatus is the coarse admin override: it checks enum membership only,
// bypassing the transition table.
func (s *Service) UpdateStatus(ctx context.Context, orderID int, newStatus string) (*domain.Order, error) {
	if !status.IsOrderStatus(newStatus) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, newStatus)
	}
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == newStatus {
		return order, nil
	}

	previousStatus := order.Status
	order.Status = newStatus
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}

	s.notifier.NotifyStatusChange(ctx, order.UserID, notifyDomain, order.ID, newStatus, previousStatus)
	return order, nil
}
