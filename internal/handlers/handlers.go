package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/mariamstore/backend/docs"
	cashhandlers "github.com/mariamstore/backend/internal/handlers/cashexpress"
	notificationhandlers "github.com/mariamstore/backend/internal/handlers/notifications"
	ordershandlers "github.com/mariamstore/backend/internal/handlers/orders"
	"github.com/mariamstore/backend/internal/service"
	"github.com/mariamstore/backend/pkg/auth"
)

type OrderHandler interface {
	CreateOrder(w http.ResponseWriter, r *http.Request)
	GetOrders(w http.ResponseWriter, r *http.Request)
	GetOrder(w http.ResponseWriter, r *http.Request)
	ReviewAvailability(w http.ResponseWriter, r *http.Request)
	ConfirmOrder(w http.ResponseWriter, r *http.Request)
	MarkAsReady(w http.ResponseWriter, r *http.Request)
	CancelOrder(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
}

type CashExpressHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequests(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	UploadDepositReceipt(w http.ResponseWriter, r *http.Request)
	ConfirmDepositReceipt(w http.ResponseWriter, r *http.Request)
	UploadSignedReceipt(w http.ResponseWriter, r *http.Request)
	UpdateRecipientData(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	GetAvailability(w http.ResponseWriter, r *http.Request)
	AddBalance(w http.ResponseWriter, r *http.Request)
	GetBalanceHistory(w http.ResponseWriter, r *http.Request)
	GetCurrentBalance(w http.ResponseWriter, r *http.Request)
	GetConfig(w http.ResponseWriter, r *http.Request)
	UpdateConfig(w http.ResponseWriter, r *http.Request)
	GetBankAccounts(w http.ResponseWriter, r *http.Request)
	CreateBankAccount(w http.ResponseWriter, r *http.Request)
	UpdateBankAccount(w http.ResponseWriter, r *http.Request)
	DeleteBankAccount(w http.ResponseWriter, r *http.Request)
}

type NotificationHandler interface {
	GetNotifications(w http.ResponseWriter, r *http.Request)
	CountUnread(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	OrderHandler        OrderHandler
	CashExpressHandler  CashExpressHandler
	NotificationHandler NotificationHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		OrderHandler:        ordershandlers.New(s.OrderService),
		CashExpressHandler:  cashhandlers.New(s.CashService, s.ConfigService),
		NotificationHandler: notificationhandlers.New(s.NotifyService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", h.OrderHandler.CreateOrder)
			r.Get("/", h.OrderHandler.GetOrders)
			r.Get("/{id}", h.OrderHandler.GetOrder)
			r.Post("/{id}/confirm", h.OrderHandler.ConfirmOrder)
			r.Post("/{id}/cancel", h.OrderHandler.CancelOrder)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Put("/{id}/availability", h.OrderHandler.ReviewAvailability)
				r.Post("/{id}/ready", h.OrderHandler.MarkAsReady)
				r.Put("/{id}/status", h.OrderHandler.UpdateStatus)
			})
		})

		r.Route("/cash-express", func(r chi.Router) {
			r.Get("/availability", h.CashExpressHandler.GetAvailability)
			r.Get("/config", h.CashExpressHandler.GetConfig)
			r.Get("/balance", h.CashExpressHandler.GetCurrentBalance)
			r.Get("/bank-accounts", h.CashExpressHandler.GetBankAccounts)

			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.CashExpressHandler.CreateRequest)
				r.Get("/", h.CashExpressHandler.GetRequests)
				r.Get("/{id}", h.CashExpressHandler.GetRequest)
				r.Put("/{id}/receipt", h.CashExpressHandler.UploadDepositReceipt)
				r.Post("/{id}/confirm-deposit", h.CashExpressHandler.ConfirmDepositReceipt)
				r.Put("/{id}/recipient", h.CashExpressHandler.UpdateRecipientData)

				r.Group(func(r chi.Router) {
					r.Use(auth.RequireAdmin)
					r.Put("/{id}/signed-receipt", h.CashExpressHandler.UploadSignedReceipt)
					r.Put("/{id}/status", h.CashExpressHandler.UpdateStatus)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Put("/config", h.CashExpressHandler.UpdateConfig)
				r.Post("/bank-accounts", h.CashExpressHandler.CreateBankAccount)
				r.Put("/bank-accounts/{id}", h.CashExpressHandler.UpdateBankAccount)
				r.Delete("/bank-accounts/{id}", h.CashExpressHandler.DeleteBankAccount)
				r.Post("/balance", h.CashExpressHandler.AddBalance)
				r.Get("/balance/history", h.CashExpressHandler.GetBalanceHistory)
			})
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", h.NotificationHandler.GetNotifications)
			r.Get("/unread-count", h.NotificationHandler.CountUnread)
			r.Put("/read-all", h.NotificationHandler.MarkAllRead)
			r.Put("/{id}/read", h.NotificationHandler.MarkRead)
		})
	})

	return r
}
