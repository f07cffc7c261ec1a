package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/repository/loader"
	"github.com/you-humble/stock-dashboard/internal/service/lookup"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

// RecentTransactions returns up to limit transactions, newest first, with
// product and location names attached. Each referenced table is read once.
func (svc *service) RecentTransactions(ctx context.Context, limit int) model.RecentTransactions {
	const op string = "dashboard.service.RecentTransactions"
	limit = limitOr(limit, svc.limits.RecentTransactions)
	log := logger.With(
		logger.String("op", op),
		logger.Int("limit", limit),
	)

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	txs, err := svc.repo.RecentTransactions(dbCtx, limit)
	if err != nil {
		log.Error(ctx, "repository recent transactions", logger.ErrorF(err))
		return model.RecentTransactions{Items: []model.RecentTransaction{}, Degraded: true}
	}
	if len(txs) > limit {
		txs = txs[:limit]
	}
	if len(txs) == 0 {
		return model.RecentTransactions{Items: []model.RecentTransaction{}}
	}

	loaders := loader.For(ctx, svc.repo)

	var (
		products     map[uuid.UUID]model.Product
		locations    map[uuid.UUID]model.Location
		productsErr  error
		locationsErr error
	)

	fanOut(
		func() {
			products, productsErr = loaders.Products(dbCtx,
				lookup.IDs(txs, func(t model.Transaction) *uuid.UUID { return t.ProductID }),
			)
		},
		func() {
			locations, locationsErr = loaders.Locations(dbCtx,
				lookup.IDs(txs, func(t model.Transaction) *uuid.UUID { return t.LocationID }),
			)
		},
	)

	var degraded bool
	if productsErr != nil {
		log.Error(ctx, "load transaction products", logger.ErrorF(productsErr))
		degraded = true
	}
	if locationsErr != nil {
		log.Error(ctx, "load transaction locations", logger.ErrorF(locationsErr))
		degraded = true
	}

	items := make([]model.RecentTransaction, 0, len(txs))
	for _, t := range txs {
		items = append(items, model.RecentTransaction{
			ID:           t.ID,
			Type:         t.Type,
			Quantity:     t.Quantity,
			CreatedAt:    t.CreatedAt,
			ProductID:    t.ProductID,
			ProductName:  lookup.Resolve(products, t.ProductID, productName, model.PlaceholderNotAvailable),
			ProductSKU:   lookup.Resolve(products, t.ProductID, productSKU, ""),
			LocationID:   t.LocationID,
			LocationName: lookup.Resolve(locations, t.LocationID, locationName, model.PlaceholderNotAvailable),
		})
	}

	return model.RecentTransactions{Items: items, Degraded: degraded}
}

// PendingPurchaseOrders returns up to limit submitted or approved orders,
// most recent order date first, with supplier names attached.
func (svc *service) PendingPurchaseOrders(ctx context.Context, limit int) model.PendingPurchaseOrders {
	const op string = "dashboard.service.PendingPurchaseOrders"
	limit = limitOr(limit, svc.limits.PendingOrders)
	log := logger.With(
		logger.String("op", op),
		logger.Int("limit", limit),
	)

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	orders, err := svc.repo.PurchaseOrders(dbCtx, model.PurchaseOrdersFilter{
		Statuses: model.PendingPurchaseOrderStatuses(),
		Limit:    limit,
	})
	if err != nil {
		log.Error(ctx, "repository purchase orders", logger.ErrorF(err))
		return model.PendingPurchaseOrders{Items: []model.PendingPurchaseOrder{}, Degraded: true}
	}
	if len(orders) > limit {
		orders = orders[:limit]
	}
	if len(orders) == 0 {
		return model.PendingPurchaseOrders{Items: []model.PendingPurchaseOrder{}}
	}

	var degraded bool
	suppliers, err := loader.For(ctx, svc.repo).Suppliers(dbCtx,
		lookup.IDs(orders, func(o model.PurchaseOrder) *uuid.UUID { return o.SupplierID }),
	)
	if err != nil {
		log.Error(ctx, "load purchase order suppliers", logger.ErrorF(err))
		degraded = true
	}

	items := make([]model.PendingPurchaseOrder, 0, len(orders))
	for _, o := range orders {
		items = append(items, model.PendingPurchaseOrder{
			ID:           o.ID,
			PONumber:     o.PONumber,
			Status:       o.Status,
			OrderDate:    o.OrderDate,
			ExpectedDate: o.ExpectedDate,
			SupplierID:   o.SupplierID,
			SupplierName: lookup.Resolve(suppliers, o.SupplierID, supplierName, model.PlaceholderNotAvailable),
		})
	}

	return model.PendingPurchaseOrders{Items: items, Degraded: degraded}
}
