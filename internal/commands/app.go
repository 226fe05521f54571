package commands

import (
	"github.com/colonyops/fixdesk/internal/core/catalog"
	"github.com/colonyops/fixdesk/internal/core/clients"
	"github.com/colonyops/fixdesk/internal/core/config"
	"github.com/colonyops/fixdesk/internal/core/orders"
	"github.com/colonyops/fixdesk/internal/core/stock"
	"github.com/colonyops/fixdesk/internal/data/db"
	"github.com/colonyops/fixdesk/internal/tui/notify"
)

// App bundles the shared dependencies built in the Before hook. Commands hold
// a pointer to a pre-allocated App that is populated once config and database
// are ready.
type App struct {
	Config  *config.Config
	DB      *db.DB
	Orders  orders.Store
	Clients clients.Store
	Catalog catalog.Store
	Stock   stock.Store
	Bus     *notify.Bus
}
