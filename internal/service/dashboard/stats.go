package service

import (
	"context"
	"sync"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

func (svc *service) Stats(ctx context.Context) model.DashboardStats {
	const op string = "dashboard.service.Stats"
	log := logger.With(logger.String("op", op))

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	var (
		totalProducts, totalLocations, pendingOrders int64
		products                                     []model.Product
		rows                                         []model.InventoryRow

		countProductsErr, locationsErr, ordersErr, productsErr, rowsErr error
	)

	fanOut(
		func() { totalProducts, countProductsErr = svc.repo.CountProducts(dbCtx) },
		func() { products, productsErr = svc.repo.Products(dbCtx) },
		func() { rows, rowsErr = svc.repo.InventoryRows(dbCtx) },
		func() { totalLocations, locationsErr = svc.repo.CountActiveLocations(dbCtx) },
		func() {
			pendingOrders, ordersErr = svc.repo.CountPurchaseOrders(dbCtx, model.PendingPurchaseOrderStatuses())
		},
	)

	var stats model.DashboardStats

	if countProductsErr != nil {
		log.Error(ctx, "repository count products", logger.ErrorF(countProductsErr))
		stats.Degraded = true
	} else {
		stats.TotalProducts = totalProducts
	}

	if productsErr != nil {
		log.Error(ctx, "repository products", logger.ErrorF(productsErr))
		stats.Degraded = true
	}

	if rowsErr != nil {
		log.Error(ctx, "repository inventory rows", logger.ErrorF(rowsErr))
		stats.Degraded = true
	} else {
		stats.TotalStock = totalQuantity(rows)
	}

	// Without both reads every product would look out of stock.
	if productsErr == nil && rowsErr == nil {
		stats.LowStockCount, stats.OutOfStockCount = classifyStock(products, sumByProduct(rows))
	}

	if locationsErr != nil {
		log.Error(ctx, "repository count active locations", logger.ErrorF(locationsErr))
		stats.Degraded = true
	} else {
		stats.TotalLocations = totalLocations
	}

	if ordersErr != nil {
		log.Error(ctx, "repository count pending purchase orders", logger.ErrorF(ordersErr))
		stats.Degraded = true
	} else {
		stats.PendingOrders = pendingOrders
	}

	return stats
}

// fanOut runs independent reads concurrently and waits for all of them.
// Each read records its own outcome.
func fanOut(reads ...func()) {
	var wg sync.WaitGroup
	for _, read := range reads {
		wg.Go(read)
	}
	wg.Wait()
}
