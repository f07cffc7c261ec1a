package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/stock-dashboard/internal/model"
)

func productToModel(e productEntity) model.Product {
	return model.Product{
		ID:           e.ID,
		Name:         e.Name,
		SKU:          e.SKU,
		CategoryID:   e.CategoryID,
		ReorderLevel: e.ReorderLevel,
	}
}

func inventoryToModel(e inventoryEntity) model.InventoryRow {
	return model.InventoryRow{
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
		Quantity:   e.Quantity,
	}
}

func locationToModel(e locationEntity) model.Location {
	return model.Location{
		ID:       e.ID,
		Name:     e.Name,
		IsActive: e.IsActive,
	}
}

func categoryToModel(e categoryEntity) model.Category {
	return model.Category{ID: e.ID, Name: e.Name}
}

func supplierToModel(e supplierEntity) model.Supplier {
	return model.Supplier{ID: e.ID, Name: e.Name}
}

func transactionToModel(e transactionEntity) model.Transaction {
	return model.Transaction{
		ID:         e.ID,
		Type:       model.TransactionType(e.TransactionType),
		Quantity:   e.Quantity,
		CreatedAt:  e.CreatedAt,
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
	}
}

func purchaseOrderToModel(e purchaseOrderEntity) model.PurchaseOrder {
	return model.PurchaseOrder{
		ID:           e.ID,
		PONumber:     e.PONumber,
		Status:       model.PurchaseOrderStatus(e.Status),
		OrderDate:    e.OrderDate,
		ExpectedDate: e.ExpectedDate,
		Notes:        e.Notes,
		SupplierID:   e.SupplierID,
		LocationID:   e.LocationID,
		CreatedBy:    e.CreatedBy,
	}
}

func purchaseOrderItemToModel(e purchaseOrderItemEntity) model.PurchaseOrderItem {
	return model.PurchaseOrderItem{
		ID:               e.ID,
		PurchaseOrderID:  e.PurchaseOrderID,
		ProductID:        e.ProductID,
		OrderedQuantity:  e.OrderedQuantity,
		ReceivedQuantity: e.ReceivedQuantity,
		UnitCost:         numericToDecimal(e.UnitCost),
	}
}

// numericToDecimal returns nil for NULL and for values that are not finite numbers.
func numericToDecimal(n pgtype.Numeric) *decimal.Decimal {
	if !n.Valid || n.NaN || n.InfinityModifier != pgtype.Finite || n.Int == nil {
		return nil
	}
	return lo.ToPtr(decimal.NewFromBigInt(n.Int, n.Exp))
}

func mapSlice[E, M any](in []E, fn func(E) M) []M {
	return lo.Map(in, func(e E, _ int) M { return fn(e) })
}
