package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/repository/loader"
	"github.com/you-humble/stock-dashboard/internal/service/lookup"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

type PurchaseOrderRepository interface {
	loader.Reader

	PurchaseOrderByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error)
	PurchaseOrderItems(ctx context.Context, orderID uuid.UUID) ([]model.PurchaseOrderItem, error)
	SupplierByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	LocationByID(ctx context.Context, id uuid.UUID) (*model.Location, error)
}

type service struct {
	repo          PurchaseOrderRepository
	readDBTimeout time.Duration
}

func NewPurchaseOrderService(repository PurchaseOrderRepository, readDBTimeout time.Duration) *service {
	return &service{
		repo:          repository,
		readDBTimeout: readDBTimeout,
	}
}

// PurchaseOrderDetail assembles one order with its supplier, location and
// priced line items. Unlike the dashboard widgets, any read failure is
// returned to the caller.
func (svc *service) PurchaseOrderDetail(ctx context.Context, id uuid.UUID) (*model.PurchaseOrderDetail, error) {
	const op string = "purchaseorder.service.PurchaseOrderDetail"
	log := logger.With(
		logger.String("op", op),
		logger.Stringer("purchase_order_id", id),
	)

	if id == uuid.Nil {
		return nil, fmt.Errorf("%s: empty purchase order id: %w", op, model.ErrValidation)
	}

	dbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	order, err := svc.repo.PurchaseOrderByID(dbCtx, id)
	if err != nil {
		if !errors.Is(err, model.ErrPurchaseOrderNotFound) {
			log.Error(ctx, "repository purchase order by id", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w: %w", op, model.ErrPurchaseOrderLoad, err)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	detail := &model.PurchaseOrderDetail{
		PurchaseOrder: *order,
		SupplierName:  model.PlaceholderNotAvailable,
		LocationName:  model.PlaceholderNotAvailable,
	}

	g, gCtx := errgroup.WithContext(dbCtx)

	if order.SupplierID != nil {
		g.Go(func() error {
			supplier, err := svc.repo.SupplierByID(gCtx, *order.SupplierID)
			switch {
			case errors.Is(err, model.ErrSupplierNotFound):
				return nil
			case err != nil:
				return fmt.Errorf("%w: %w", model.ErrSupplierLoad, err)
			}
			if supplier.Name != "" {
				detail.SupplierName = supplier.Name
			}
			return nil
		})
	}

	if order.LocationID != nil {
		g.Go(func() error {
			location, err := svc.repo.LocationByID(gCtx, *order.LocationID)
			switch {
			case errors.Is(err, model.ErrLocationNotFound):
				return nil
			case err != nil:
				return fmt.Errorf("%w: %w", model.ErrLocationLoad, err)
			}
			if location.Name != "" {
				detail.LocationName = location.Name
			}
			return nil
		})
	}

	g.Go(func() error {
		items, err := svc.repo.PurchaseOrderItems(gCtx, order.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", model.ErrPurchaseOrderItemsLoad, err)
		}

		productIDs := lo.Map(items, func(it model.PurchaseOrderItem, _ int) uuid.UUID { return it.ProductID })
		products, err := loader.For(ctx, svc.repo).Products(gCtx, productIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", model.ErrProductsLoad, err)
		}

		detail.Lines, detail.Total = priceLines(items, products)
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error(ctx, "assemble purchase order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return detail, nil
}

// priceLines resolves product names and computes every line total and the
// order total. A missing unit cost or received quantity counts as zero.
func priceLines(
	items []model.PurchaseOrderItem,
	products map[uuid.UUID]model.Product,
) ([]model.PurchaseOrderLine, decimal.Decimal) {
	lines := make([]model.PurchaseOrderLine, 0, len(items))
	total := decimal.Zero

	for _, it := range items {
		unitCost := lo.FromPtrOr(it.UnitCost, decimal.Zero)
		lineTotal := decimal.NewFromInt(it.OrderedQuantity).Mul(unitCost)
		productID := it.ProductID

		lines = append(lines, model.PurchaseOrderLine{
			ID:               it.ID,
			ProductID:        it.ProductID,
			ProductName:      lookup.Resolve(products, &productID, productName, model.PlaceholderNotAvailable),
			SKU:              lookup.Resolve(products, &productID, productSKU, model.PlaceholderNotAvailable),
			OrderedQuantity:  it.OrderedQuantity,
			ReceivedQuantity: lo.FromPtr(it.ReceivedQuantity),
			UnitCost:         unitCost,
			LineTotal:        lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return lines, total
}

func productName(p model.Product) string { return p.Name }
func productSKU(p model.Product) string  { return p.SKU }
