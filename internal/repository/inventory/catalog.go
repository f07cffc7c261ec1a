package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/you-humble/stock-dashboard/internal/model"
)

var productColumns = []string{
	"id",
	"name",
	"sku",
	"category_id",
	"COALESCE(reorder_level, 0) AS reorder_level",
}

func (r *repository) CountProducts(ctx context.Context) (int64, error) {
	return count(ctx, r.db, r.sb.Select("COUNT(*)").From(tableProducts))
}

func (r *repository) Products(ctx context.Context) ([]model.Product, error) {
	q := r.sb.
		Select(productColumns...).
		From(tableProducts).
		OrderBy("name", "id")

	entities, err := selectAll[productEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, productToModel), nil
}

func (r *repository) ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	if len(ids) == 0 {
		return []model.Product{}, nil
	}

	q := r.sb.
		Select(productColumns...).
		From(tableProducts).
		Where(sq.Eq{"id": ids})

	entities, err := selectAll[productEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, productToModel), nil
}

func (r *repository) Categories(ctx context.Context) ([]model.Category, error) {
	q := r.sb.
		Select("id", "name").
		From(tableCategories).
		OrderBy("name", "id")

	entities, err := selectAll[categoryEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, categoryToModel), nil
}

func (r *repository) Locations(ctx context.Context) ([]model.Location, error) {
	q := r.sb.
		Select("id", "name", "is_active").
		From(tableLocations).
		OrderBy("name", "id")

	entities, err := selectAll[locationEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, locationToModel), nil
}

func (r *repository) LocationsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Location, error) {
	if len(ids) == 0 {
		return []model.Location{}, nil
	}

	q := r.sb.
		Select("id", "name", "is_active").
		From(tableLocations).
		Where(sq.Eq{"id": ids})

	entities, err := selectAll[locationEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, locationToModel), nil
}

func (r *repository) LocationByID(ctx context.Context, id uuid.UUID) (*model.Location, error) {
	q := r.sb.
		Select("id", "name", "is_active").
		From(tableLocations).
		Where(sq.Eq{"id": id})

	e, err := selectOne[locationEntity](ctx, r.db, q, model.ErrLocationNotFound)
	if err != nil {
		return nil, err
	}

	loc := locationToModel(e)
	return &loc, nil
}

func (r *repository) CountActiveLocations(ctx context.Context) (int64, error) {
	q := r.sb.
		Select("COUNT(*)").
		From(tableLocations).
		Where(sq.Eq{"is_active": true})

	return count(ctx, r.db, q)
}

func (r *repository) SupplierByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	q := r.sb.
		Select("id", "name").
		From(tableSuppliers).
		Where(sq.Eq{"id": id})

	e, err := selectOne[supplierEntity](ctx, r.db, q, model.ErrSupplierNotFound)
	if err != nil {
		return nil, err
	}

	s := supplierToModel(e)
	return &s, nil
}

func (r *repository) SuppliersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Supplier, error) {
	if len(ids) == 0 {
		return []model.Supplier{}, nil
	}

	q := r.sb.
		Select("id", "name").
		From(tableSuppliers).
		Where(sq.Eq{"id": ids})

	entities, err := selectAll[supplierEntity](ctx, r.db, q)
	if err != nil {
		return nil, err
	}

	return mapSlice(entities, supplierToModel), nil
}
