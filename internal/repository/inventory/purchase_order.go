package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/stock-dashboard/internal/model"
)

var purchaseOrderColumns = []string{
	"id",
	"po_number",
	"status",
	"order_date",
	"expected_date",
	"notes",
	"supplier_id",
	"location_id",
	"created_by",
}

func statusArgs(statuses []model.PurchaseOrderStatus) []string {
	return lo.Map(statuses, func(s model.PurchaseOrderStatus, _ int) string { return string(s) })
}

func (r *repository) CountPurchaseOrders(
	ctx context.Context,
	statuses []model.PurchaseOrderStatus,
) (int64, error) {
	q := r.sb.
		Select("COUNT(*)").
		From(tablePurchaseOrders)

	if len(statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusArgs(statuses)})
	}

	return count(ctx, r.db, q)
}

// PurchaseOrders returns orders matching filter, most recent order_date first.
func (r *repository) PurchaseOrders(
	ctx context.Context,
	filter model.PurchaseOrdersFilter,
) ([]model.PurchaseOrder, error) {
	q := r.sb.
		Select(purchaseOrderColumns...).
		From(tablePurchaseOrders).
		OrderBy("order_date DESC", "id")

	if len(filter.Statuses) > 0 {
		q = q.Where(sq.Eq{"status": statusArgs(filter.Statuses)})
	}
	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}

	entities, err := selectAll[purchaseOrderEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, purchaseOrderToModel), nil
}

func (r *repository) PurchaseOrderByID(ctx context.Context, id uuid.UUID) (*model.PurchaseOrder, error) {
	q := r.sb.
		Select(purchaseOrderColumns...).
		From(tablePurchaseOrders).
		Where(sq.Eq{"id": id})

	e, err := selectOne[purchaseOrderEntity](ctx, r.db, q, model.ErrPurchaseOrderNotFound)
	if err != nil {
		return nil, err
	}

	po := purchaseOrderToModel(e)
	return &po, nil
}

func (r *repository) PurchaseOrderItems(ctx context.Context, orderID uuid.UUID) ([]model.PurchaseOrderItem, error) {
	q := r.sb.
		Select(
			"id",
			"purchase_order_id",
			"product_id",
			"ordered_quantity",
			"received_quantity",
			"unit_cost",
		).
		From(tablePurchaseOrderItems).
		Where(sq.Eq{"purchase_order_id": orderID}).
		OrderBy("id")

	entities, err := selectAll[purchaseOrderItemEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, purchaseOrderItemToModel), nil
}
