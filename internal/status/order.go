package status

import (
	"errors"
	"fmt"
)

// Order statuses for the pickup flow.
const (
	OrderCreated            = "CREATED"
	OrderUnderReview        = "UNDER_REVIEW"
	OrderPartiallyAvailable = "PARTIALLY_AVAILABLE"
	OrderAvailable          = "AVAILABLE"
	OrderInPreparation      = "IN_PREPARATION"
	OrderReadyForPickup     = "READY_FOR_PICKUP"
	OrderCompleted          = "COMPLETED"
	OrderCancelled          = "CANCELLED"
)

var ErrInvalidTransition = errors.New("invalid status transition")

// orderTransitions is the single source of truth for legal order moves.
var orderTransitions = map[string][]string{
	OrderCreated:            {OrderUnderReview, OrderCancelled},
	OrderUnderReview:        {OrderPartiallyAvailable, OrderAvailable, OrderInPreparation, OrderCancelled},
	OrderPartiallyAvailable: {OrderInPreparation, OrderCancelled},
	OrderAvailable:          {OrderInPreparation, OrderCancelled},
	OrderInPreparation:      {OrderReadyForPickup, OrderCancelled},
	OrderReadyForPickup:     {OrderCompleted},
	OrderCompleted:          {},
	OrderCancelled:          {},
}

func IsOrderStatus(s string) bool {
	_, ok := orderTransitions[s]
	return ok
}

func OrderIsTerminal(s string) bool {
	allowed, ok := orderTransitions[s]
	return ok && len(allowed) == 0
}

func CanOrderTransition(from, to string) bool {
	for _, s := range orderTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// OrderTransition returns ErrInvalidTransition unless from -> to is listed in
// the transition table.
func OrderTransition(from, to string) error {
	if !CanOrderTransition(from, to) {
		return fmt.Errorf("%w: order %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
