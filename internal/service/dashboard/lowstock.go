package service

import (
	"context"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

// LowStockProducts lists up to limit products below their reorder level,
// lowest quantity first. A product with no stock at all is listed too.
func (svc *service) LowStockProducts(ctx context.Context, limit int) model.LowStock {
	const op string = "dashboard.service.LowStockProducts"
	limit = limitOr(limit, svc.limits.LowStock)
	log := logger.With(
		logger.String("op", op),
		logger.Int("limit", limit),
	)

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	var (
		products    []model.Product
		rows        []model.InventoryRow
		productsErr error
		rowsErr     error
	)

	fanOut(
		func() { products, productsErr = svc.repo.Products(dbCtx) },
		func() { rows, rowsErr = svc.repo.InventoryRows(dbCtx) },
	)

	if productsErr != nil || rowsErr != nil {
		if productsErr != nil {
			log.Error(ctx, "repository products", logger.ErrorF(productsErr))
		}
		if rowsErr != nil {
			log.Error(ctx, "repository inventory rows", logger.ErrorF(rowsErr))
		}
		return model.LowStock{Items: []model.LowStockItem{}, Degraded: true}
	}

	return model.LowStock{Items: findLowStock(products, sumByProduct(rows), limit)}
}
