package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tableProducts           = "products"
	tableInventory          = "inventory"
	tableLocations          = "locations"
	tableCategories         = "categories"
	tableSuppliers          = "suppliers"
	tableTransactions       = "inventory_transactions"
	tablePurchaseOrders     = "purchase_orders"
	tablePurchaseOrderItems = "purchase_order_items"
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type repository struct {
	pool *pgxpool.Pool
	db   querier
	sb   sq.StatementBuilderType
}

func NewInventoryRepository(pool *pgxpool.Pool) *repository {
	return &repository{
		pool: pool,
		db:   pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Ping checks that the database answers.
func (r *repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func selectAll[E any](ctx context.Context, db querier, q sq.Sqlizer) ([]E, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToStructByName[E])
}

// selectOne returns notFound when the query yields no rows.
func selectOne[E any](ctx context.Context, db querier, q sq.Sqlizer, notFound error) (E, error) {
	var zero E

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return zero, err
	}

	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return zero, err
	}

	e, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[E])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zero, notFound
		}
		return zero, err
	}

	return e, nil
}

func count(ctx context.Context, db querier, q sq.SelectBuilder) (int64, error) {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return 0, err
	}

	var n int64
	if err := db.QueryRow(ctx, sqlStr, args...).Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
