package model

import (
	"time"

	"github.com/google/uuid"
)

// Every dashboard result below carries Degraded. It is set when at least one
// underlying read failed and the affected values were defaulted.

type DashboardStats struct {
	TotalProducts   int64
	LowStockCount   int64
	OutOfStockCount int64
	TotalStock      int64
	TotalLocations  int64
	PendingOrders   int64
	Degraded        bool
}

type CategoryCount struct {
	Name  string
	Count int64
}

// CategoryBreakdown lists categories in the order they were first seen.
type CategoryBreakdown struct {
	Items    []CategoryCount
	Degraded bool
}

type LocationStock struct {
	Name     string
	Quantity int64
}

// LocationBreakdown lists locations in the order they were first seen.
type LocationBreakdown struct {
	Items    []LocationStock
	Degraded bool
}

type RecentTransaction struct {
	ID           uuid.UUID
	Type         TransactionType
	Quantity     int64
	CreatedAt    time.Time
	ProductID    *uuid.UUID
	ProductName  string
	ProductSKU   string
	LocationID   *uuid.UUID
	LocationName string
}

type RecentTransactions struct {
	Items    []RecentTransaction
	Degraded bool
}

type PendingPurchaseOrder struct {
	ID           uuid.UUID
	PONumber     string
	Status       PurchaseOrderStatus
	OrderDate    time.Time
	ExpectedDate *time.Time
	SupplierID   *uuid.UUID
	SupplierName string
}

type PendingPurchaseOrders struct {
	Items    []PendingPurchaseOrder
	Degraded bool
}

type LowStockItem struct {
	ProductID    uuid.UUID
	ProductName  string
	SKU          string
	Quantity     int64
	ReorderLevel int64
}

type LowStock struct {
	Items    []LowStockItem
	Degraded bool
}

type DashboardOverview struct {
	Stats              DashboardStats
	RecentTransactions RecentTransactions
	PendingOrders      PendingPurchaseOrders
	Categories         CategoryBreakdown
	Locations          LocationBreakdown
	LowStock           LowStock
}

func (o *DashboardOverview) Degraded() bool {
	return o.Stats.Degraded ||
		o.RecentTransactions.Degraded ||
		o.PendingOrders.Degraded ||
		o.Categories.Degraded ||
		o.Locations.Degraded ||
		o.LowStock.Degraded
}
