package status

import "fmt"

// Cash Express request statuses. Names match the operational vocabulary used
// by the store staff.
const (
	CashPendiente            = "PENDIENTE"
	CashEnEsperaConfirmacion = "EN_ESPERA_CONFIRMACION"
	CashRebotado             = "REBOTADO"
	CashDepositoValidado     = "DEPOSITO_VALIDADO"
	CashEntregado            = "ENTREGADO"
	CashCancelado            = "CANCELADO"
)

var cashTransitions = map[string][]string{
	CashPendiente:            {CashEnEsperaConfirmacion, CashCancelado},
	CashEnEsperaConfirmacion: {CashRebotado, CashDepositoValidado, CashCancelado},
	CashRebotado:             {CashEnEsperaConfirmacion, CashCancelado},
	CashDepositoValidado:     {CashEntregado},
	CashEntregado:            {},
	CashCancelado:            {},
}

func IsCashStatus(s string) bool {
	_, ok := cashTransitions[s]
	return ok
}

func CashIsTerminal(s string) bool {
	allowed, ok := cashTransitions[s]
	return ok && len(allowed) == 0
}

func CanCashTransition(from, to string) bool {
	for _, s := range cashTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func CashTransition(from, to string) error {
	if !CanCashTransition(from, to) {
		return fmt.Errorf("%w: cash express %s -> %s", ErrInvalidTransition, from, to)
	}
	return nil
}
