package service

import (
	"context"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

func (svc *service) ProductsByCategory(ctx context.Context) model.CategoryBreakdown {
	const op string = "dashboard.service.ProductsByCategory"
	log := logger.With(logger.String("op", op))

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	var (
		products      []model.Product
		categories    []model.Category
		productsErr   error
		categoriesErr error
	)

	fanOut(
		func() { products, productsErr = svc.repo.Products(dbCtx) },
		func() { categories, categoriesErr = svc.repo.Categories(dbCtx) },
	)

	if productsErr != nil || categoriesErr != nil {
		if productsErr != nil {
			log.Error(ctx, "repository products", logger.ErrorF(productsErr))
		}
		if categoriesErr != nil {
			log.Error(ctx, "repository categories", logger.ErrorF(categoriesErr))
		}
		return model.CategoryBreakdown{Items: []model.CategoryCount{}, Degraded: true}
	}

	return model.CategoryBreakdown{Items: countByCategory(products, categories)}
}

func (svc *service) StockByLocation(ctx context.Context) model.LocationBreakdown {
	const op string = "dashboard.service.StockByLocation"
	log := logger.With(logger.String("op", op))

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	var (
		rows         []model.InventoryRow
		locations    []model.Location
		rowsErr      error
		locationsErr error
	)

	fanOut(
		func() { rows, rowsErr = svc.repo.InventoryRows(dbCtx) },
		func() { locations, locationsErr = svc.repo.Locations(dbCtx) },
	)

	if rowsErr != nil || locationsErr != nil {
		if rowsErr != nil {
			log.Error(ctx, "repository inventory rows", logger.ErrorF(rowsErr))
		}
		if locationsErr != nil {
			log.Error(ctx, "repository locations", logger.ErrorF(locationsErr))
		}
		return model.LocationBreakdown{Items: []model.LocationStock{}, Degraded: true}
	}

	return model.LocationBreakdown{Items: stockByLocation(rows, locations)}
}
