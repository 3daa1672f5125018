package repo

import (
	"github.com/mariamstore/backend/internal/pg"
	balancehistoryrepo "github.com/mariamstore/backend/internal/repo/balancehistory-repo"
	cashexpressrepo "github.com/mariamstore/backend/internal/repo/cashexpress-repo"
	configrepo "github.com/mariamstore/backend/internal/repo/config-repo"
	notificationrepo "github.com/mariamstore/backend/internal/repo/notification-repo"
	orderrepo "github.com/mariamstore/backend/internal/repo/order-repo"
	"github.com/mariamstore/backend/internal/service/cashservice"
	"github.com/mariamstore/backend/internal/service/configservice"
	"github.com/mariamstore/backend/internal/service/notifyservice"
	"github.com/mariamstore/backend/internal/service/orderservice"
)

type Repositories struct {
	OrderRepo        orderservice.Repo
	CashRepo         cashservice.Repo
	CashConfigRepo   cashservice.ConfigRepo
	SettingsRepo     configservice.Repo
	HistoryRepo      cashservice.HistoryRepo
	NotificationRepo notifyservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	orderRepo := orderrepo.New(conn, txManager)
	cashRepo := cashexpressrepo.New(conn, txManager)
	// one table, two consumers: the cash service reads and debits the
	// balance, the settings service manages the rest of the row
	cfgRepo := configrepo.New(conn, txManager)
	historyRepo := balancehistoryrepo.New(conn)
	notificationRepo := notificationrepo.New(conn)

	return &Repositories{
		OrderRepo:        orderRepo,
		CashRepo:         cashRepo,
		CashConfigRepo:   cfgRepo,
		SettingsRepo:     cfgRepo,
		HistoryRepo:      historyRepo,
		NotificationRepo: notificationRepo,
	}
}
