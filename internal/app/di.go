package app

import (
	"context"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/you-humble/stock-dashboard/internal/config"
	repository "github.com/you-humble/stock-dashboard/internal/repository/inventory"
	dashsvc "github.com/you-humble/stock-dashboard/internal/service/dashboard"
	posvc "github.com/you-humble/stock-dashboard/internal/service/purchaseorder"
	thttp "github.com/you-humble/stock-dashboard/internal/transport/http/dashboard/v1"
	"github.com/you-humble/stock-dashboard/internal/transport/http/middleware"
	"github.com/you-humble/stock-dashboard/platform/closer"
	"github.com/you-humble/stock-dashboard/platform/db/migrator"
)

type InventoryRepository interface {
	dashsvc.InventoryRepository
	posvc.PurchaseOrderRepository

	Ping(ctx context.Context) error
}

type DashboardHandler interface {
	Register(r chi.Router)
}

type di struct {
	dbPool     *pgxpool.Pool
	migrator   *migrator.Migrator
	repository InventoryRepository

	dashboardService     thttp.DashboardService
	purchaseOrderService thttp.PurchaseOrderService
	handler              DashboardHandler

	rateLimiter *middleware.RateLimiter
	router      *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) DBPool(ctx context.Context) *pgxpool.Pool {
	if d.dbPool == nil {
		pgCfg, err := pgxpool.ParseConfig(config.C().Postgres.DSN())
		if err != nil {
			panic(fmt.Sprintf("failed to parse pg config: %v\n", err))
		}
		pgCfg.MaxConns = config.C().Postgres.MaxConns()

		pool, err := pgxpool.NewWithConfig(ctx, pgCfg)
		if err != nil {
			panic(fmt.Sprintf("failed to create pg pool: %v\n", err))
		}

		closer.AddNamed("PGX Pool",
			func(ctx context.Context) error {
				pool.Close()
				return nil
			})

		if err := pool.Ping(ctx); err != nil {
			panic(fmt.Sprintf("failed to ping db: %v\n", err))
		}

		d.dbPool = pool
	}

	return d.dbPool
}

func (d *di) Migrator(ctx context.Context) *migrator.Migrator {
	if d.migrator == nil {
		d.migrator = migrator.NewMigrator(
			stdlib.OpenDBFromPool(d.DBPool(ctx)),
			config.C().Postgres.MigrationDirectory(),
		)

		closer.AddNamed("Migrator",
			func(ctx context.Context) error {
				return d.migrator.Close()
			})
	}

	return d.migrator
}

func (d *di) InventoryRepository(ctx context.Context) InventoryRepository {
	if d.repository == nil {
		d.repository = repository.NewInventoryRepository(d.DBPool(ctx))
	}

	return d.repository
}

func (d *di) DashboardService(ctx context.Context) thttp.DashboardService {
	if d.dashboardService == nil {
		cfg := config.C()

		d.dashboardService = dashsvc.NewDashboardService(
			d.InventoryRepository(ctx),
			cfg.Server.DBReadTimeout(),
			dashsvc.Limits{
				RecentTransactions: cfg.Dashboard.RecentTransactionsLimit(),
				PendingOrders:      cfg.Dashboard.PendingOrdersLimit(),
				LowStock:           cfg.Dashboard.LowStockLimit(),
				OverviewActivity:   cfg.Dashboard.OverviewActivityLimit(),
			},
		)
	}

	return d.dashboardService
}

func (d *di) PurchaseOrderService(ctx context.Context) thttp.PurchaseOrderService {
	if d.purchaseOrderService == nil {
		d.purchaseOrderService = posvc.NewPurchaseOrderService(
			d.InventoryRepository(ctx),
			config.C().Server.DBReadTimeout(),
		)
	}

	return d.purchaseOrderService
}

func (d *di) DashboardHandler(ctx context.Context) DashboardHandler {
	if d.handler == nil {
		d.handler = thttp.NewDashboardHandler(
			d.DashboardService(ctx),
			d.PurchaseOrderService(ctx),
			config.C().Dashboard.MaxLimit(),
		)
	}

	return d.handler
}

func (d *di) RateLimiter(_ context.Context) *middleware.RateLimiter {
	if d.rateLimiter == nil {
		cfg := config.C().RateLimit

		d.rateLimiter = middleware.NewRateLimiter(cfg.RPS(), cfg.Burst(), cfg.VisitorTTL())
	}

	return d.rateLimiter
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
