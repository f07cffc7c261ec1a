package service

import (
	"context"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/repository/loader"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

// Overview computes every widget of the dashboard page concurrently.
func (svc *service) Overview(ctx context.Context) model.DashboardOverview {
	const op string = "dashboard.service.Overview"

	ctx = loader.WithLoaders(ctx, loader.For(ctx, svc.repo))
	activity := svc.limits.OverviewActivity

	var o model.DashboardOverview
	fanOut(
		func() { o.Stats = svc.Stats(ctx) },
		func() { o.RecentTransactions = svc.RecentTransactions(ctx, activity) },
		func() { o.PendingOrders = svc.PendingPurchaseOrders(ctx, activity) },
		func() { o.Categories = svc.ProductsByCategory(ctx) },
		func() { o.Locations = svc.StockByLocation(ctx) },
		func() { o.LowStock = svc.LowStockProducts(ctx, svc.limits.LowStock) },
	)

	if o.Degraded() {
		logger.Warn(ctx, "dashboard overview is degraded", logger.String("op", op))
	}

	return o
}
