//go:build integration

package e2e

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// fixture is the fixed inventory the suite asserts against.
//
//	Hammer  Tools          reorder 10  Warehouse 8 + Warehouse 7  -> 15, ok
//	Brush   Paint          reorder 5   no location 3              -> 3, low
//	Nails   no category    reorder 0   no rows                    -> 0, out
type fixture struct {
	tools, paint      uuid.UUID
	warehouse, store  uuid.UUID
	acme              uuid.UUID
	hammer, brush     uuid.UUID
	nails             uuid.UUID
	submitted         uuid.UUID
	approved, draft   uuid.UUID
	newestTransaction uuid.UUID
}

func seed(ctx context.Context, pool *pgxpool.Pool) (fixture, error) {
	f := fixture{
		tools:             uuid.New(),
		paint:             uuid.New(),
		warehouse:         uuid.New(),
		store:             uuid.New(),
		acme:              uuid.New(),
		hammer:            uuid.New(),
		brush:             uuid.New(),
		nails:             uuid.New(),
		submitted:         uuid.New(),
		approved:          uuid.New(),
		draft:             uuid.New(),
		newestTransaction: uuid.New(),
	}
	now := time.Now().UTC()

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fixture{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO categories (id, name) VALUES ($1, 'Tools'), ($2, 'Paint')`, []any{f.tools, f.paint}},
		{
			`INSERT INTO locations (id, name, is_active) VALUES ($1, 'Warehouse', TRUE), ($2, 'Store', FALSE)`,
			[]any{f.warehouse, f.store},
		},
		{`INSERT INTO suppliers (id, name) VALUES ($1, 'Acme')`, []any{f.acme}},
		{
			`INSERT INTO products (id, name, sku, category_id, reorder_level) VALUES
				($1, 'Hammer', 'HAM-1', $4, 10),
				($2, 'Brush', 'BR-1', $5, 5),
				($3, 'Nails', 'NL-1', NULL, 0)`,
			[]any{f.hammer, f.brush, f.nails, f.tools, f.paint},
		},
		{
			`INSERT INTO inventory (product_id, location_id, quantity) VALUES
				($1, $3, 8),
				($1, $3, 7),
				($2, NULL, 3)`,
			[]any{f.hammer, f.brush, f.warehouse},
		},
		{
			`INSERT INTO inventory_transactions (id, transaction_type, quantity, created_at, product_id, location_id) VALUES
				($1, 'receipt', 5, $2, $3, $4),
				(gen_random_uuid(), 'issue', 2, $5, NULL, $6)`,
			[]any{f.newestTransaction, now, f.hammer, f.warehouse, now.Add(-time.Hour), f.store},
		},
		{
			`INSERT INTO purchase_orders (id, po_number, status, order_date, supplier_id, location_id) VALUES
				($1, 'PO-1', 'submitted', $4, $5, NULL),
				($2, 'PO-2', 'approved', $6, NULL, $7),
				($3, 'PO-3', 'draft', $4, $5, $7)`,
			[]any{f.submitted, f.approved, f.draft, now, f.acme, now.Add(-24 * time.Hour), f.warehouse},
		},
		{
			`INSERT INTO purchase_order_items (purchase_order_id, product_id, ordered_quantity, received_quantity, unit_cost) VALUES
				($1, $2, 3, NULL, 2.50),
				($1, $3, 2, 1, NULL)`,
			[]any{f.submitted, f.hammer, f.brush},
		},
	}

	for _, s := range stmts {
		if _, err := tx.Exec(ctx, s.sql, s.args...); err != nil {
			return fixture{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fixture{}, err
	}
	return f, nil
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE TABLE
		inventory_transactions, purchase_order_items, purchase_orders,
		inventory, products, suppliers, locations, categories
		RESTART IDENTITY CASCADE`)
	return err
}
