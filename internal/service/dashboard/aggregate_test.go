package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/stock-dashboard/internal/model"
)

func TestClassifyStock(t *testing.T) {
	t.Parallel()

	p1, p2, p3, p4, p5 := uuid.New(), uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name     string
		products []model.Product
		rows     []model.InventoryRow
		wantLow  int64
		wantOut  int64
	}{
		{
			name:     "zero quantity with reorder level is out of stock only",
			products: []model.Product{{ID: p1, ReorderLevel: 5}},
			rows:     []model.InventoryRow{{ProductID: p1, Quantity: 0}},
			wantLow:  0,
			wantOut:  1,
		},
		{
			name:     "product without rows is out of stock",
			products: []model.Product{{ID: p1}},
			wantOut:  1,
		},
		{
			name: "rows of one product are summed across locations",
			products: []model.Product{
				{ID: p1, ReorderLevel: 10},
				{ID: p2, ReorderLevel: 10},
			},
			rows: []model.InventoryRow{
				{ProductID: p1, Quantity: 4},
				{ProductID: p1, Quantity: 4},
				{ProductID: p2, Quantity: 6},
				{ProductID: p2, Quantity: 6},
			},
			wantLow: 1,
		},
		{
			name: "no reorder tracking never counts as low",
			products: []model.Product{
				{ID: p1, ReorderLevel: 0},
				{ID: p2, ReorderLevel: -3},
				{ID: p3, ReorderLevel: 5},
				{ID: p4, ReorderLevel: 5},
				{ID: p5, ReorderLevel: 5},
			},
			rows: []model.InventoryRow{
				{ProductID: p1, Quantity: 1},
				{ProductID: p2, Quantity: 1},
				{ProductID: p3, Quantity: 4},
				{ProductID: p4, Quantity: 5},
			},
			wantLow: 1,
			wantOut: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			low, out := classifyStock(tt.products, sumByProduct(tt.rows))
			assert.Equal(t, tt.wantLow, low)
			assert.Equal(t, tt.wantOut, out)
			assert.LessOrEqual(t, low+out, int64(len(tt.products)))
		})
	}
}

func TestTotalQuantity(t *testing.T) {
	t.Parallel()

	rows := []model.InventoryRow{
		{ProductID: uuid.New(), Quantity: 10},
		{ProductID: uuid.New(), Quantity: -2},
		{ProductID: uuid.New(), Quantity: 7},
	}
	assert.Equal(t, int64(15), totalQuantity(rows))
	assert.Zero(t, totalQuantity(nil))
}

func TestCountByCategory(t *testing.T) {
	t.Parallel()

	tools := model.Category{ID: uuid.New(), Name: "Tools"}
	paint := model.Category{ID: uuid.New(), Name: "Paint"}
	deleted := uuid.New()

	products := []model.Product{
		{ID: uuid.New(), CategoryID: &paint.ID},
		{ID: uuid.New(), CategoryID: nil},
		{ID: uuid.New(), CategoryID: &tools.ID},
		{ID: uuid.New(), CategoryID: &deleted},
		{ID: uuid.New(), CategoryID: &paint.ID},
	}

	got := countByCategory(products, []model.Category{tools, paint})

	assert.Equal(t, []model.CategoryCount{
		{Name: "Paint", Count: 2},
		{Name: model.PlaceholderUncategorized, Count: 2},
		{Name: "Tools", Count: 1},
	}, got)

	var sum int64
	for _, c := range got {
		sum += c.Count
	}
	assert.Equal(t, int64(len(products)), sum)
}

func TestCountByCategoryEmpty(t *testing.T) {
	t.Parallel()

	got := countByCategory(nil, []model.Category{{ID: uuid.New(), Name: "Tools"}})
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStockByLocation(t *testing.T) {
	t.Parallel()

	a, b, idle := uuid.New(), uuid.New(), uuid.New()
	rows := []model.InventoryRow{
		{ProductID: uuid.New(), LocationID: &a, Quantity: 10},
		{ProductID: uuid.New(), LocationID: &a, Quantity: 5},
		{ProductID: uuid.New(), LocationID: &b, Quantity: 3},
	}
	locations := []model.Location{
		{ID: a, Name: "Warehouse", IsActive: true},
		{ID: idle, Name: "Annex", IsActive: true},
	}

	got := stockByLocation(rows, locations)

	assert.Equal(t, []model.LocationStock{
		{Name: "Warehouse", Quantity: 15},
		{Name: model.PlaceholderUnknown, Quantity: 3},
	}, got)
}

func TestStockByLocationPreservesTotal(t *testing.T) {
	t.Parallel()

	locations := make([]model.Location, 0, 3)
	for range 3 {
		locations = append(locations, model.Location{ID: uuid.New(), Name: gofakeit.City()})
	}

	rows := make([]model.InventoryRow, 0, 50)
	for i := range 50 {
		row := model.InventoryRow{
			ProductID: uuid.New(),
			Quantity:  int64(gofakeit.IntRange(-5, 100)),
		}
		if i%7 != 0 {
			row.LocationID = &locations[i%len(locations)].ID
		}
		rows = append(rows, row)
	}

	var sum int64
	for _, l := range stockByLocation(rows, locations) {
		sum += l.Quantity
	}
	assert.Equal(t, totalQuantity(rows), sum)
}

func TestFindLowStock(t *testing.T) {
	t.Parallel()

	empty := model.Product{ID: uuid.New(), Name: "Empty", SKU: "E", ReorderLevel: 5}
	low := model.Product{ID: uuid.New(), Name: "Low", SKU: "L", ReorderLevel: 10}
	lowToo := model.Product{ID: uuid.New(), Name: "LowToo", SKU: "L2", ReorderLevel: 20}
	ok := model.Product{ID: uuid.New(), Name: "Ok", SKU: "O", ReorderLevel: 3}
	untracked := model.Product{ID: uuid.New(), Name: "Untracked", SKU: "U"}

	products := []model.Product{low, ok, untracked, lowToo, empty}
	qty := map[uuid.UUID]int64{
		low.ID:    4,
		lowToo.ID: 4,
		ok.ID:     3,
	}

	t.Run("sorted by quantity, stable for ties", func(t *testing.T) {
		t.Parallel()

		got := findLowStock(products, qty, 10)
		require.Len(t, got, 3)
		assert.Equal(t, "Empty", got[0].ProductName)
		assert.Equal(t, int64(0), got[0].Quantity)
		assert.Equal(t, "Low", got[1].ProductName)
		assert.Equal(t, "LowToo", got[2].ProductName)
		assert.Equal(t, int64(20), got[2].ReorderLevel)
	})

	t.Run("truncated to limit", func(t *testing.T) {
		t.Parallel()

		got := findLowStock(products, qty, 2)
		require.Len(t, got, 2)
		assert.Equal(t, "Empty", got[0].ProductName)
		assert.Equal(t, "Low", got[1].ProductName)
	})

	t.Run("zero limit", func(t *testing.T) {
		t.Parallel()

		got := findLowStock(products, qty, 0)
		require.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestFanOutWaitsForEveryRead(t *testing.T) {
	t.Parallel()

	var done atomic.Int32
	reads := make([]func(), 0, 6)
	for i := range 6 {
		reads = append(reads, func() {
			time.Sleep(time.Duration(i) * time.Millisecond)
			done.Add(1)
		})
	}

	fanOut(reads...)

	assert.Equal(t, int32(6), done.Load())
}
