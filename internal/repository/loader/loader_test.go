package loader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/stock-dashboard/internal/model"
)

type fakeReader struct {
	mu        sync.Mutex
	requested []uuid.UUID
	calls     int

	products  []model.Product
	locations []model.Location
	suppliers []model.Supplier
	err       error
}

func (f *fakeReader) record(ids []uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.requested = append(f.requested, ids...)
}

func (f *fakeReader) ProductsByIDs(_ context.Context, ids []uuid.UUID) ([]model.Product, error) {
	f.record(ids)
	return f.products, f.err
}

func (f *fakeReader) LocationsByIDs(_ context.Context, ids []uuid.UUID) ([]model.Location, error) {
	f.record(ids)
	return f.locations, f.err
}

func (f *fakeReader) SuppliersByIDs(_ context.Context, ids []uuid.UUID) ([]model.Supplier, error) {
	f.record(ids)
	return f.suppliers, f.err
}

func TestLoadersProducts(t *testing.T) {
	t.Parallel()

	known := uuid.New()
	missing := uuid.New()

	r := &fakeReader{
		products: []model.Product{{ID: known, Name: "Bolt", SKU: "B-1"}},
	}
	l := NewLoaders(r, 5*time.Millisecond)

	got, err := l.Products(context.Background(), []uuid.UUID{known, missing, known})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, "Bolt", got[known].Name)
	_, ok := got[missing]
	assert.False(t, ok)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, []uuid.UUID{known, missing}, r.requested)
}

func TestLoadersSharedReferencesOneQuery(t *testing.T) {
	t.Parallel()

	warehouse := model.Location{ID: uuid.New(), Name: "Warehouse"}
	store := model.Location{ID: uuid.New(), Name: "Store"}

	ids := make([]uuid.UUID, 0, 40)
	for i := range 40 {
		if i%4 == 0 {
			ids = append(ids, store.ID)
			continue
		}
		ids = append(ids, warehouse.ID)
	}

	r := &fakeReader{locations: []model.Location{warehouse, store}}
	l := NewLoaders(r, DefaultWait)

	got, err := l.Locations(context.Background(), ids)
	require.NoError(t, err)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, []uuid.UUID{store.ID, warehouse.ID}, r.requested)
	assert.Equal(t, map[uuid.UUID]model.Location{warehouse.ID: warehouse, store.ID: store}, got)
}

func TestLoadersEmptyIDsSkipLookup(t *testing.T) {
	t.Parallel()

	r := &fakeReader{}
	l := NewLoaders(r, DefaultWait)

	got, err := l.Suppliers(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, r.calls)
}

func TestLoadersPropagateError(t *testing.T) {
	t.Parallel()

	errDB := errors.New("db is down")
	r := &fakeReader{err: errDB}
	l := NewLoaders(r, DefaultWait)

	got, err := l.Locations(context.Background(), []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.ErrorIs(t, err, errDB)
	assert.Nil(t, got)
}

func TestMiddlewareAttachesLoaders(t *testing.T) {
	t.Parallel()

	r := &fakeReader{}

	var fromCtx *Loaders
	h := Middleware(r, DefaultWait)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		fromCtx = For(req.Context(), nil)
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, fromCtx)

	ctx := WithLoaders(context.Background(), fromCtx)
	assert.Same(t, fromCtx, For(ctx, r))
	assert.NotSame(t, fromCtx, For(context.Background(), r))
}
