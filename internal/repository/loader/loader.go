package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/samber/lo"

	"github.com/you-humble/stock-dashboard/internal/model"
)

type ctxKey string

const loadersKey = ctxKey("dataloaders")

const (
	DefaultWait      = time.Millisecond
	maxBatchCapacity = 500
)

// Reader is the batched lookup surface of the inventory repository.
type Reader interface {
	ProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
	LocationsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Location, error)
	SuppliersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Supplier, error)
}

// Loaders coalesce id lookups issued while serving one request into one
// query per table.
type Loaders struct {
	productLoader  *dataloader.Loader[uuid.UUID, *model.Product]
	locationLoader *dataloader.Loader[uuid.UUID, *model.Location]
	supplierLoader *dataloader.Loader[uuid.UUID, *model.Supplier]
}

func NewLoaders(r Reader, wait time.Duration) *Loaders {
	return &Loaders{
		productLoader: dataloader.NewBatchedLoader(
			batchFunc(r.ProductsByIDs, func(p model.Product) uuid.UUID { return p.ID }),
			dataloader.WithWait[uuid.UUID, *model.Product](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *model.Product](maxBatchCapacity),
		),
		locationLoader: dataloader.NewBatchedLoader(
			batchFunc(r.LocationsByIDs, func(l model.Location) uuid.UUID { return l.ID }),
			dataloader.WithWait[uuid.UUID, *model.Location](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *model.Location](maxBatchCapacity),
		),
		supplierLoader: dataloader.NewBatchedLoader(
			batchFunc(r.SuppliersByIDs, func(s model.Supplier) uuid.UUID { return s.ID }),
			dataloader.WithWait[uuid.UUID, *model.Supplier](wait),
			dataloader.WithBatchCapacity[uuid.UUID, *model.Supplier](maxBatchCapacity),
		),
	}
}

// Middleware attaches fresh loaders to every request context.
func Middleware(r Reader, wait time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := WithLoaders(req.Context(), NewLoaders(r, wait))
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// For returns the loaders attached to ctx, or new ones reading from r.
func For(ctx context.Context, r Reader) *Loaders {
	if l, ok := ctx.Value(loadersKey).(*Loaders); ok && l != nil {
		return l
	}
	return NewLoaders(r, DefaultWait)
}

func (l *Loaders) Products(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Product, error) {
	return loadMap(ctx, l.productLoader, ids)
}

func (l *Loaders) Locations(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Location, error) {
	return loadMap(ctx, l.locationLoader, ids)
}

func (l *Loaders) Suppliers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Supplier, error) {
	return loadMap(ctx, l.supplierLoader, ids)
}

// loadMap resolves the distinct ids. Ids with no matching row are absent
// from the result.
func loadMap[V any](
	ctx context.Context,
	ld *dataloader.Loader[uuid.UUID, *V],
	ids []uuid.UUID,
) (map[uuid.UUID]V, error) {
	keys := lo.Uniq(ids)
	out := make(map[uuid.UUID]V, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	values, errs := ld.LoadMany(ctx, keys)()
	for i, key := range keys {
		if i < len(errs) && errs[i] != nil {
			return nil, errs[i]
		}
		if i < len(values) && values[i] != nil {
			out[key] = *values[i]
		}
	}

	return out, nil
}

func batchFunc[V any](
	fetch func(ctx context.Context, ids []uuid.UUID) ([]V, error),
	idOf func(V) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *V] {
	return func(ctx context.Context, ids []uuid.UUID) []*dataloader.Result[*V] {
		rows, err := fetch(ctx, ids)
		if err != nil {
			return handleError[*V](len(ids), err)
		}
		return generateLoaderResults(rows, ids, idOf)
	}
}

func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := range itemsLength {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// generateLoaderResults lines rows up with ids. A missing row yields a nil value.
func generateLoaderResults[V any](rows []V, ids []uuid.UUID, idOf func(V) uuid.UUID) []*dataloader.Result[*V] {
	byID := lo.KeyBy(rows, idOf)

	results := make([]*dataloader.Result[*V], 0, len(ids))
	for _, id := range ids {
		var data *V
		if row, ok := byID[id]; ok {
			data = &row
		}
		results = append(results, &dataloader.Result[*V]{Data: data})
	}
	return results
}
