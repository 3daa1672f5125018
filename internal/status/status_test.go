package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanOrderTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"created to under review", OrderCreated, OrderUnderReview, true},
		{"under review to partially available", OrderUnderReview, OrderPartiallyAvailable, true},
		{"under review to available", OrderUnderReview, OrderAvailable, true},
		{"under review skips to in preparation", OrderUnderReview, OrderInPreparation, true},
		{"partially available accepted", OrderPartiallyAvailable, OrderInPreparation, true},
		{"in preparation to ready", OrderInPreparation, OrderReadyForPickup, true},
		{"ready to completed", OrderReadyForPickup, OrderCompleted, true},
		{"ready cannot go back to review", OrderReadyForPickup, OrderUnderReview, false},
		{"ready cannot be cancelled", OrderReadyForPickup, OrderCancelled, false},
		{"completed is terminal", OrderCompleted, OrderCancelled, false},
		{"cancelled is terminal", OrderCancelled, OrderUnderReview, false},
		{"in preparation can be cancelled", OrderInPreparation, OrderCancelled, true},
		{"unknown status", "WHATEVER", OrderCancelled, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanOrderTransition(tt.from, tt.to))
		})
	}
}

func TestOrderTransition(t *testing.T) {
	assert.NoError(t, OrderTransition(OrderInPreparation, OrderReadyForPickup))

	err := OrderTransition(OrderReadyForPickup, OrderUnderReview)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestOrderIsTerminal(t *testing.T) {
	assert.True(t, OrderIsTerminal(OrderCompleted))
	assert.True(t, OrderIsTerminal(OrderCancelled))
	assert.False(t, OrderIsTerminal(OrderUnderReview))
	assert.False(t, OrderIsTerminal("NOPE"))
}

func TestCanCashTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    string
		to      string
		allowed bool
	}{
		{"pendiente to en espera", CashPendiente, CashEnEsperaConfirmacion, true},
		{"pendiente cancelable", CashPendiente, CashCancelado, true},
		{"en espera rebotado", CashEnEsperaConfirmacion, CashRebotado, true},
		{"en espera validado", CashEnEsperaConfirmacion, CashDepositoValidado, true},
		{"rebotado resubmit", CashRebotado, CashEnEsperaConfirmacion, true},
		{"validado entregado", CashDepositoValidado, CashEntregado, true},
		{"validado cannot be cancelled", CashDepositoValidado, CashCancelado, false},
		{"entregado terminal", CashEntregado, CashCancelado, false},
		{"cancelado terminal", CashCancelado, CashPendiente, false},
		{"pendiente cannot jump to entregado", CashPendiente, CashEntregado, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanCashTransition(tt.from, tt.to))
		})
	}
}

func TestIsCashStatus(t *testing.T) {
	assert.True(t, IsCashStatus(CashPendiente))
	assert.True(t, IsCashStatus(CashEntregado))
	assert.False(t, IsCashStatus("PENDING"))
}
