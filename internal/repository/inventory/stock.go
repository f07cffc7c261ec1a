package repository

import (
	"context"

	"github.com/you-humble/stock-dashboard/internal/model"
)

// InventoryRows returns every stock row. A NULL quantity is read as 0.
func (r *repository) InventoryRows(ctx context.Context) ([]model.InventoryRow, error) {
	q := r.sb.
		Select("product_id", "location_id", "COALESCE(quantity, 0) AS quantity").
		From(tableInventory).
		OrderBy("id")

	entities, err := selectAll[inventoryEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, inventoryToModel), nil
}

// RecentTransactions returns up to limit transactions, newest first.
func (r *repository) RecentTransactions(ctx context.Context, limit int) ([]model.Transaction, error) {
	q := r.sb.
		Select("id", "transaction_type", "quantity", "created_at", "product_id", "location_id").
		From(tableTransactions).
		OrderBy("created_at DESC", "id").
		Limit(uint64(max(limit, 0)))

	entities, err := selectAll[transactionEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, transactionToModel), nil
}
