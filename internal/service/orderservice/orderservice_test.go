package orderservice

import (
	"context"
	"errors"
	"testing"

	"github.com/mariamstore/backend/internal/domain"
	"github.com/mariamstore/backend/internal/status"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *MockNotifier) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	notifier := NewMockNotifier(ctrl)
	service := New(repo, notifier)
	defer ctrl.Finish()
	return service, repo, notifier
}

func intPtr(v int) *int { return &v }

func TestCreateOrder(t *testing.T) {
	service, repo, _ := NewMock(t)
	tests := []struct {
		name          string
		items         []NewItem
		prepareMock   func()
		expectedTotal float64
		expectedError error
	}{
		{
			name:          "Empty order is rejected",
			items:         nil,
			prepareMock:   func() {},
			expectedError: ErrEmptyOrder,
		},
		{
			name: "Item with zero quantity is rejected",
			items: []NewItem{
				{ProductID: 1, ProductName: "Leche", Quantity: 0, UnitPrice: 10},
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidItem,
		},
		{
			name: "Item without name is rejected",
			items: []NewItem{
				{ProductID: 1, Quantity: 1, UnitPrice: 10},
			},
			prepareMock:   func() {},
			expectedError: ErrInvalidItem,
		},
		{
			name: "Total is the sum of item subtotals",
			items: []NewItem{
				{ProductID: 1, ProductName: "Leche", Quantity: 2, UnitPrice: 10},
				{ProductID: 2, ProductName: "Pan", Quantity: 1, UnitPrice: 5},
			},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedTotal: 25,
		},
		{
			name: "Explicit subtotal wins over unit price times quantity",
			items: []NewItem{
				{ProductID: 1, ProductName: "Leche", Quantity: 2, UnitPrice: 10, Subtotal: 18},
			},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedTotal: 18,
		},
		{
			name: "Save error is propagated",
			items: []NewItem{
				{ProductID: 1, ProductName: "Leche", Quantity: 1, UnitPrice: 10},
			},
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			order, err := service.CreateOrder(context.Background(), 1, tt.items, "", nil)
			if tt.expectedError != nil {
				assert.ErrorContains(t, err, tt.expectedError.Error())
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, status.OrderUnderReview, order.Status)
			assert.Equal(t, tt.expectedTotal, order.Total)
			assert.NotEmpty(t, order.Folio)
		})
	}
}

func TestGetOrder(t *testing.T) {
	service, repo, _ := NewMock(t)
	tests := []struct {
		name          string
		userID        int
		isAdmin       bool
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Owner can read own order",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Order{ID: 10, UserID: 1}, nil)
			},
		},
		{
			name:    "Admin can read any order",
			userID:  2,
			isAdmin: true,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Order{ID: 10, UserID: 1}, nil)
			},
		},
		{
			name:   "Other client is rejected",
			userID: 2,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(&domain.Order{ID: 10, UserID: 1}, nil)
			},
			expectedError: ErrForbidden,
		},
		{
			name:   "Missing order",
			userID: 1,
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), 10).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			order, err := service.GetOrder(context.Background(), 10, tt.userID, tt.isAdmin)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 10, order.ID)
		})
	}
}

func TestGetOrders(t *testing.T) {
	service, repo, _ := NewMock(t)

	t.Run("Client sees own orders only", func(t *testing.T) {
		repo.EXPECT().FindAll(gomock.Any(), 1, "").Return([]domain.Order{{ID: 1}}, nil)
		orders, err := service.GetOrders(context.Background(), 1, false, "")
		assert.NoError(t, err)
		assert.Len(t, orders, 1)
	})

	t.Run("Admin sees everything", func(t *testing.T) {
		repo.EXPECT().FindAll(gomock.Any(), 0, status.OrderUnderReview).Return([]domain.Order{{ID: 1}, {ID: 2}}, nil)
		orders, err := service.GetOrders(context.Background(), 7, true, status.OrderUnderReview)
		assert.NoError(t, err)
		assert.Len(t, orders, 2)
	})

	t.Run("Unknown status filter is rejected", func(t *testing.T) {
		orders, err := service.GetOrders(context.Background(), 1, false, "SHIPPED")
		assert.ErrorIs(t, err, ErrInvalidStatus)
		assert.Nil(t, orders)
	})
}

func reviewedOrder() *domain.Order {
	return &domain.Order{
		ID:     10,
		UserID: 1,
		Status: status.OrderUnderReview,
		Total:  25,
		Items: []domain.OrderItem{
			{ID: 1, ProductID: 1, ProductName: "Leche", Quantity: 2, UnitPrice: 10, Subtotal: 20},
			{ID: 2, ProductID: 2, ProductName: "Pan", Quantity: 1, UnitPrice: 5, Subtotal: 5},
		},
	}
}

func TestReviewAvailability(t *testing.T) {
	service, repo, notifier := NewMock(t)

	t.Run("All available goes straight to preparation", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)
		repo.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderInPreparation, status.OrderUnderReview)

		order, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true},
			{ItemID: 2, IsAvailable: true},
		})
		assert.NoError(t, err)
		assert.Equal(t, status.OrderInPreparation, order.Status)
		assert.Equal(t, 25.0, order.Total)
	})

	t.Run("Unavailable item drops the total and leaves a partial order", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)
		repo.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderPartiallyAvailable, status.OrderUnderReview)

		order, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true, ConfirmedQuantity: intPtr(1)},
			{ItemID: 2, IsAvailable: false},
		})
		assert.NoError(t, err)
		assert.Equal(t, status.OrderPartiallyAvailable, order.Status)
		assert.Equal(t, 10.0, order.Total)
		assert.Equal(t, 0.0, order.Items[1].Subtotal)
		assert.Equal(t, 0, *order.Items[1].ConfirmedQuantity)
	})

	t.Run("Confirmed quantity is clamped to the ordered quantity", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)
		repo.EXPECT().ApplyReview(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderInPreparation, status.OrderUnderReview)

		order, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true, ConfirmedQuantity: intPtr(99)},
			{ItemID: 2, IsAvailable: true, ConfirmedQuantity: intPtr(1)},
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, *order.Items[0].ConfirmedQuantity)
		assert.Equal(t, 25.0, order.Total)
	})

	t.Run("Decisions must cover every item", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)

		_, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true},
		})
		assert.ErrorIs(t, err, ErrItemsMismatch)
	})

	t.Run("Decision for a foreign item is rejected", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)

		_, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true},
			{ItemID: 99, IsAvailable: true},
		})
		assert.ErrorIs(t, err, ErrItemsMismatch)
	})

	t.Run("Second review of the same order fails", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderInPreparation
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

		_, err := service.ReviewAvailability(context.Background(), 10, []ItemDecision{
			{ItemID: 1, IsAvailable: true},
			{ItemID: 2, IsAvailable: true},
		})
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestConfirmByCustomer(t *testing.T) {
	service, repo, notifier := NewMock(t)

	t.Run("Owner confirms a partially available order", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderPartiallyAvailable
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderInPreparation, status.OrderPartiallyAvailable)

		got, err := service.ConfirmByCustomer(context.Background(), 10, 1)
		assert.NoError(t, err)
		assert.Equal(t, status.OrderInPreparation, got.Status)
		assert.NotNil(t, got.ConfirmedAt)
	})

	t.Run("Another user cannot confirm", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)

		_, err := service.ConfirmByCustomer(context.Background(), 10, 2)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("Cannot confirm from a ready order", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderReadyForPickup
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

		_, err := service.ConfirmByCustomer(context.Background(), 10, 1)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})
}

func TestMarkAsReady(t *testing.T) {
	service, repo, notifier := NewMock(t)

	t.Run("Order in preparation becomes ready", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderInPreparation
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderReadyForPickup, status.OrderInPreparation)

		got, err := service.MarkAsReady(context.Background(), 10)
		assert.NoError(t, err)
		assert.Equal(t, status.OrderReadyForPickup, got.Status)
		assert.NotNil(t, got.ReadyAt)
	})

	t.Run("Order under review cannot be ready", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)

		_, err := service.MarkAsReady(context.Background(), 10)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})
}

func TestCancelOrder(t *testing.T) {
	service, repo, notifier := NewMock(t)

	t.Run("Owner cancels an order under review", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(reviewedOrder(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderCancelled, status.OrderUnderReview)

		got, err := service.CancelOrder(context.Background(), 10, 1, false)
		assert.NoError(t, err)
		assert.Equal(t, status.OrderCancelled, got.Status)
	})

	t.Run("Ready order cannot be cancelled", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderReadyForPickup
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

		_, err := service.CancelOrder(context.Background(), 10, 1, false)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})

	t.Run("Completed order cannot be cancelled", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderCompleted
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

		_, err := service.CancelOrder(context.Background(), 10, 1, false)
		assert.ErrorIs(t, err, status.ErrInvalidTransition)
	})
}

func TestUpdateStatus(t *testing.T) {
	service, repo, notifier := NewMock(t)

	t.Run("Admin override only checks enum membership", func(t *testing.T) {
		order := reviewedOrder()
		order.Status = status.OrderReadyForPickup
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		notifier.EXPECT().NotifyStatusChange(gomock.Any(), 1, "order", 10, status.OrderCompleted, status.OrderReadyForPickup)

		got, err := service.UpdateStatus(context.Background(), 10, status.OrderCompleted)
		assert.NoError(t, err)
		assert.Equal(t, status.OrderCompleted, got.Status)
	})

	t.Run("Unknown status is rejected", func(t *testing.T) {
		_, err := service.UpdateStatus(context.Background(), 10, "SHIPPED")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("Same status is a no-op", func(t *testing.T) {
		order := reviewedOrder()
		repo.EXPECT().FindByID(gomock.Any(), 10).Return(order, nil)

		got, err := service.UpdateStatus(context.Background(), 10, status.OrderUnderReview)
		assert.NoError(t, err)
		assert.Equal(t, status.OrderUnderReview, got.Status)
	})
}
