package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseOrderStatus string

const (
	PurchaseOrderStatusDraft     PurchaseOrderStatus = "draft"
	PurchaseOrderStatusSubmitted PurchaseOrderStatus = "submitted"
	PurchaseOrderStatusApproved  PurchaseOrderStatus = "approved"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "received"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "cancelled"
)

// PendingPurchaseOrderStatuses are the statuses of orders still awaiting delivery.
func PendingPurchaseOrderStatuses() []PurchaseOrderStatus {
	return []PurchaseOrderStatus{
		PurchaseOrderStatusSubmitted,
		PurchaseOrderStatusApproved,
	}
}

type PurchaseOrder struct {
	ID           uuid.UUID
	PONumber     string
	Status       PurchaseOrderStatus
	OrderDate    time.Time
	ExpectedDate *time.Time
	Notes        *string
	SupplierID   *uuid.UUID
	LocationID   *uuid.UUID
	CreatedBy    *uuid.UUID
}

type PurchaseOrderItem struct {
	ID               uuid.UUID
	PurchaseOrderID  uuid.UUID
	ProductID        uuid.UUID
	OrderedQuantity  int64
	ReceivedQuantity *int64
	UnitCost         *decimal.Decimal
}

type PurchaseOrdersFilter struct {
	Statuses []PurchaseOrderStatus
	Limit    int
}

// PurchaseOrderLine is one line item with its product resolved and its total computed.
type PurchaseOrderLine struct {
	ID               uuid.UUID
	ProductID        uuid.UUID
	ProductName      string
	SKU              string
	OrderedQuantity  int64
	ReceivedQuantity int64
	UnitCost         decimal.Decimal
	LineTotal        decimal.Decimal
}

type PurchaseOrderDetail struct {
	PurchaseOrder
	SupplierName string
	LocationName string
	Lines        []PurchaseOrderLine
	Total        decimal.Decimal
}
