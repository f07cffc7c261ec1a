package converter

import (
	"github.com/samber/lo"

	"github.com/you-humble/stock-dashboard/internal/model"
	dashboardv1 "github.com/you-humble/stock-dashboard/pkg/api/dashboard/v1"
)

func PurchaseOrderDetailToResponse(d *model.PurchaseOrderDetail) dashboardv1.PurchaseOrderResponse {
	return dashboardv1.PurchaseOrderResponse{
		ID:           d.ID,
		PONumber:     d.PONumber,
		Status:       string(d.Status),
		OrderDate:    d.OrderDate,
		ExpectedDate: d.ExpectedDate,
		Notes:        d.Notes,
		CreatedBy:    d.CreatedBy,
		SupplierID:   d.SupplierID,
		SupplierName: d.SupplierName,
		LocationID:   d.LocationID,
		LocationName: d.LocationName,
		Lines:        lo.Map(d.Lines, purchaseOrderLineToResponse),
		Total:        d.Total,
	}
}

func purchaseOrderLineToResponse(l model.PurchaseOrderLine, _ int) dashboardv1.PurchaseOrderLine {
	return dashboardv1.PurchaseOrderLine{
		ID:               l.ID,
		ProductID:        l.ProductID,
		ProductName:      l.ProductName,
		SKU:              l.SKU,
		OrderedQuantity:  l.OrderedQuantity,
		ReceivedQuantity: l.ReceivedQuantity,
		UnitCost:         l.UnitCost,
		LineTotal:        l.LineTotal,
	}
}
