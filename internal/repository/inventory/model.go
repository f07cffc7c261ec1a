package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type productEntity struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	SKU          string     `db:"sku"`
	CategoryID   *uuid.UUID `db:"category_id"`
	ReorderLevel int64      `db:"reorder_level"`
}

type inventoryEntity struct {
	ProductID  uuid.UUID  `db:"product_id"`
	LocationID *uuid.UUID `db:"location_id"`
	Quantity   int64      `db:"quantity"`
}

type locationEntity struct {
	ID       uuid.UUID `db:"id"`
	Name     string    `db:"name"`
	IsActive bool      `db:"is_active"`
}

type categoryEntity struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type supplierEntity struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

type transactionEntity struct {
	ID              uuid.UUID  `db:"id"`
	TransactionType string     `db:"transaction_type"`
	Quantity        int64      `db:"quantity"`
	CreatedAt       time.Time  `db:"created_at"`
	ProductID       *uuid.UUID `db:"product_id"`
	LocationID      *uuid.UUID `db:"location_id"`
}

type purchaseOrderEntity struct {
	ID           uuid.UUID  `db:"id"`
	PONumber     string     `db:"po_number"`
	Status       string     `db:"status"`
	OrderDate    time.Time  `db:"order_date"`
	ExpectedDate *time.Time `db:"expected_date"`
	Notes        *string    `db:"notes"`
	SupplierID   *uuid.UUID `db:"supplier_id"`
	LocationID   *uuid.UUID `db:"location_id"`
	CreatedBy    *uuid.UUID `db:"created_by"`
}

type purchaseOrderItemEntity struct {
	ID               uuid.UUID      `db:"id"`
	PurchaseOrderID  uuid.UUID      `db:"purchase_order_id"`
	ProductID        uuid.UUID      `db:"product_id"`
	OrderedQuantity  int64          `db:"ordered_quantity"`
	ReceivedQuantity *int64         `db:"received_quantity"`
	UnitCost         pgtype.Numeric `db:"unit_cost"`
}
