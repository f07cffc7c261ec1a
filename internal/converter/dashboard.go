package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/stock-dashboard/internal/model"
	dashboardv1 "github.com/you-humble/stock-dashboard/pkg/api/dashboard/v1"
)

func StatsToResponse(s model.DashboardStats) dashboardv1.StatsResponse {
	return dashboardv1.StatsResponse{
		TotalProducts:   s.TotalProducts,
		LowStockCount:   s.LowStockCount,
		OutOfStockCount: s.OutOfStockCount,
		TotalStock:      s.TotalStock,
		TotalLocations:  s.TotalLocations,
		PendingOrders:   s.PendingOrders,
		Degraded:        s.Degraded,
	}
}

func CategoryBreakdownToResponse(b model.CategoryBreakdown) dashboardv1.CategoriesResponse {
	return dashboardv1.CategoriesResponse{
		Items: lo.Map(b.Items, func(c model.CategoryCount, _ int) dashboardv1.CategoryCount {
			return dashboardv1.CategoryCount{Name: c.Name, Count: c.Count}
		}),
		Degraded: b.Degraded,
	}
}

func LocationBreakdownToResponse(b model.LocationBreakdown) dashboardv1.LocationsStockResponse {
	return dashboardv1.LocationsStockResponse{
		Items: lo.Map(b.Items, func(l model.LocationStock, _ int) dashboardv1.LocationStock {
			return dashboardv1.LocationStock{Name: l.Name, Quantity: l.Quantity}
		}),
		Degraded: b.Degraded,
	}
}

func RecentTransactionsToResponse(r model.RecentTransactions) dashboardv1.RecentTransactionsResponse {
	return dashboardv1.RecentTransactionsResponse{
		Items: lo.Map(r.Items, func(t model.RecentTransaction, _ int) dashboardv1.Transaction {
			return dashboardv1.Transaction{
				ID:           t.ID,
				Type:         string(t.Type),
				Quantity:     t.Quantity,
				CreatedAt:    t.CreatedAt,
				ProductID:    t.ProductID,
				ProductName:  t.ProductName,
				ProductSKU:   t.ProductSKU,
				LocationID:   t.LocationID,
				LocationName: t.LocationName,
			}
		}),
		Degraded: r.Degraded,
	}
}

func PendingPurchaseOrdersToResponse(p model.PendingPurchaseOrders) dashboardv1.PendingPurchaseOrdersResponse {
	return dashboardv1.PendingPurchaseOrdersResponse{
		Items: lo.Map(p.Items, func(o model.PendingPurchaseOrder, _ int) dashboardv1.PendingPurchaseOrder {
			return dashboardv1.PendingPurchaseOrder{
				ID:           o.ID,
				PONumber:     o.PONumber,
				Status:       string(o.Status),
				OrderDate:    o.OrderDate,
				ExpectedDate: o.ExpectedDate,
				SupplierID:   o.SupplierID,
				SupplierName: o.SupplierName,
			}
		}),
		Degraded: p.Degraded,
	}
}

func LowStockToResponse(l model.LowStock) dashboardv1.LowStockResponse {
	return dashboardv1.LowStockResponse{
		Items: lo.Map(l.Items, func(it model.LowStockItem, _ int) dashboardv1.LowStockItem {
			return dashboardv1.LowStockItem{
				ProductID:    it.ProductID,
				ProductName:  it.ProductName,
				SKU:          it.SKU,
				Quantity:     it.Quantity,
				ReorderLevel: it.ReorderLevel,
			}
		}),
		Degraded: l.Degraded,
	}
}

func OverviewToResponse(o model.DashboardOverview) dashboardv1.OverviewResponse {
	return dashboardv1.OverviewResponse{
		Stats:              StatsToResponse(o.Stats),
		RecentTransactions: RecentTransactionsToResponse(o.RecentTransactions),
		PendingOrders:      PendingPurchaseOrdersToResponse(o.PendingOrders),
		Categories:         CategoryBreakdownToResponse(o.Categories),
		Locations:          LocationBreakdownToResponse(o.Locations),
		LowStock:           LowStockToResponse(o.LowStock),
		Degraded:           o.Degraded(),
	}
}
