package service

import (
	"github.com/mariamstore/backend/internal/handlers/cashexpress"
	"github.com/mariamstore/backend/internal/handlers/notifications"
	"github.com/mariamstore/backend/internal/handlers/orders"

	"github.com/mariamstore/backend/internal/pg"
	"github.com/mariamstore/backend/internal/repo"
	cashservice "github.com/mariamstore/backend/internal/service/cashservice"
	configservice "github.com/mariamstore/backend/internal/service/configservice"
	notifyservice "github.com/mariamstore/backend/internal/service/notifyservice"
	orderservice "github.com/mariamstore/backend/internal/service/orderservice"
)

type Services struct {
	OrderService  orders.Service
	CashService   cashexpress.Service
	ConfigService cashexpress.ConfigService
	NotifyService notifications.Service

	// concrete handle for the purge job and worker pool shutdown
	Notifier *notifyservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	notifier := notifyservice.New(repo.NotificationRepo)
	orderService := orderservice.New(repo.OrderRepo, notifier)
	cashService := cashservice.New(repo.CashRepo, repo.CashConfigRepo, repo.HistoryRepo, notifier, txManager)
	configService := configservice.New(repo.SettingsRepo)

	return &Services{
		OrderService:  orderService,
		CashService:   cashService,
		ConfigService: configService,
		NotifyService: notifier,
		Notifier:      notifier,
	}
}
