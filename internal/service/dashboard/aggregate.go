package service

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/service/lookup"
)

// sumByProduct adds up the quantity of every row of each product.
func sumByProduct(rows []model.InventoryRow) map[uuid.UUID]int64 {
	out := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		out[r.ProductID] += r.Quantity
	}
	return out
}

func totalQuantity(rows []model.InventoryRow) int64 {
	var total int64
	for _, r := range rows {
		total += r.Quantity
	}
	return total
}

// classifyStock counts out-of-stock (quantity 0) and low-stock (below a
// positive reorder level) products. The two classes do not overlap.
func classifyStock(products []model.Product, qty map[uuid.UUID]int64) (low, out int64) {
	for _, p := range products {
		q := qty[p.ID]
		switch {
		case q == 0:
			out++
		case p.ReorderLevel > 0 && q < p.ReorderLevel:
			low++
		}
	}
	return low, out
}

// countByCategory counts products per category name in first-seen order.
func countByCategory(products []model.Product, categories []model.Category) []model.CategoryCount {
	byID := make(map[uuid.UUID]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	out := make([]model.CategoryCount, 0)
	index := make(map[string]int)
	for _, p := range products {
		name := lookup.Resolve(byID, p.CategoryID, categoryName, model.PlaceholderUncategorized)

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, model.CategoryCount{Name: name})
		}
		out[i].Count++
	}

	return out
}

// stockByLocation sums quantity per location name in first-seen order.
// Locations without rows are absent.
func stockByLocation(rows []model.InventoryRow, locations []model.Location) []model.LocationStock {
	byID := make(map[uuid.UUID]model.Location, len(locations))
	for _, l := range locations {
		byID[l.ID] = l
	}

	out := make([]model.LocationStock, 0)
	index := make(map[string]int)
	for _, r := range rows {
		name := lookup.Resolve(byID, r.LocationID, locationName, model.PlaceholderUnknown)

		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, model.LocationStock{Name: name})
		}
		out[i].Quantity += r.Quantity
	}

	return out
}

// findLowStock lists products below a positive reorder level, lowest
// quantity first, keeping the read order among equal quantities.
func findLowStock(products []model.Product, qty map[uuid.UUID]int64, limit int) []model.LowStockItem {
	out := make([]model.LowStockItem, 0)
	for _, p := range products {
		q := qty[p.ID]
		if p.ReorderLevel <= 0 || q >= p.ReorderLevel {
			continue
		}
		out = append(out, model.LowStockItem{
			ProductID:    p.ID,
			ProductName:  p.Name,
			SKU:          p.SKU,
			Quantity:     q,
			ReorderLevel: p.ReorderLevel,
		})
	}

	slices.SortStableFunc(out, func(a, b model.LowStockItem) int {
		return cmp.Compare(a.Quantity, b.Quantity)
	})

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func categoryName(c model.Category) string { return c.Name }
func locationName(l model.Location) string { return l.Name }
func productName(p model.Product) string   { return p.Name }
func productSKU(p model.Product) string    { return p.SKU }
func supplierName(s model.Supplier) string { return s.Name }
