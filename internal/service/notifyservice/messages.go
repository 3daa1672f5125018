package notifyservice

import "github.com/mariamstore/backend/internal/status"

type statusMessage struct {
	Title   string
	Message string
	Action  string
}

// statusMessages maps (domain, status) to the text shown to the customer.
var statusMessages = map[string]map[string]statusMessage{
	DomainCashExpress: {
		status.CashPendiente: {
			Title:   "Solicitud Pendiente",
			Message: "Tu solicitud de Efectivo Express está pendiente de depósito.",
			Action:  "Realiza el depósito y sube tu comprobante.",
		},
		status.CashEnEsperaConfirmacion: {
			Title:   "En Espera de Confirmación",
			Message: "Tu depósito está siendo validado.",
			Action:  "Espera la confirmación de tu depósito.",
		},
		status.CashRebotado: {
			Title:   "Depósito Rechazado",
			Message: "Tu depósito fue rechazado. Verifica los datos.",
			Action:  "Revisa los detalles y contacta con soporte.",
		},
		status.CashDepositoValidado: {
			Title:   "Depósito Validado",
			Message: "Tu depósito ha sido validado exitosamente.",
			Action:  "Tu solicitud está siendo procesada.",
		},
		status.CashEntregado: {
			Title:   "Solicitud Entregada",
			Message: "Tu solicitud ha sido entregada exitosamente.",
			Action:  "Gracias por usar Efectivo Express.",
		},
		status.CashCancelado: {
			Title:   "Solicitud Cancelada",
			Message: "Tu solicitud ha sido cancelada.",
			Action:  "Contacta con soporte si tienes dudas.",
		},
	},
	DomainOrder: {
		status.OrderUnderReview: {
			Title:   "Pedido en Revisión",
			Message: "Estamos revisando la disponibilidad de tus productos.",
			Action:  "Te avisaremos cuando la revisión termine.",
		},
		status.OrderPartiallyAvailable: {
			Title:   "Disponibilidad Parcial",
			Message: "Algunos productos de tu pedido no están disponibles en la cantidad solicitada.",
			Action:  "Revisa tu pedido actualizado y confirma si deseas continuar.",
		},
		status.OrderAvailable: {
			Title:   "Pedido Disponible",
			Message: "Todos los productos de tu pedido están disponibles.",
			Action:  "Confirma tu pedido para que comencemos a prepararlo.",
		},
		status.OrderInPreparation: {
			Title:   "Pedido en Preparación",
			Message: "Tu pedido está siendo preparado.",
			Action:  "Pronto estará listo para recoger.",
		},
		status.OrderReadyForPickup: {
			Title:   "Pedido Listo",
			Message: "Tu pedido está listo para recoger.",
			Action:  "Ve a la sucursal a recoger tu pedido.",
		},
		status.OrderCompleted: {
			Title:   "Pedido Entregado",
			Message: "Tu pedido ha sido entregado exitosamente.",
			Action:  "Gracias por tu compra.",
		},
		status.OrderCancelled: {
			Title:   "Pedido Cancelado",
			Message: "Tu pedido ha sido cancelado.",
			Action:  "Contacta con soporte si tienes dudas.",
		},
	},
}
