package service

import (
	"context"
	"time"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/repository/loader"
)

type InventoryRepository interface {
	loader.Reader

	CountProducts(ctx context.Context) (int64, error)
	Products(ctx context.Context) ([]model.Product, error)
	Categories(ctx context.Context) ([]model.Category, error)
	InventoryRows(ctx context.Context) ([]model.InventoryRow, error)
	Locations(ctx context.Context) ([]model.Location, error)
	CountActiveLocations(ctx context.Context) (int64, error)
	CountPurchaseOrders(ctx context.Context, statuses []model.PurchaseOrderStatus) (int64, error)
	RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error)
	PurchaseOrders(ctx context.Context, filter model.PurchaseOrdersFilter) ([]model.PurchaseOrder, error)
}

// Limits are the row caps used when a caller passes a non-positive limit.
type Limits struct {
	RecentTransactions int
	PendingOrders      int
	LowStock           int
	OverviewActivity   int
}

func DefaultLimits() Limits {
	return Limits{
		RecentTransactions: 10,
		PendingOrders:      5,
		LowStock:           5,
		OverviewActivity:   5,
	}
}

// service computes the dashboard widgets. None of its methods fail: a read
// error is logged and the affected values fall back to zero or empty, with
// Degraded set on the result.
type service struct {
	repo          InventoryRepository
	readDBTimeout time.Duration
	limits        Limits
}

func NewDashboardService(
	repository InventoryRepository,
	readDBTimeout time.Duration,
	limits Limits,
) *service {
	return &service{
		repo:          repository,
		readDBTimeout: readDBTimeout,
		limits:        limits,
	}
}

func limitOr(limit, fallback int) int {
	if limit > 0 {
		return limit
	}
	return fallback
}
