package dashboardv1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type StatsResponse struct {
	TotalProducts   int64 `json:"total_products"`
	LowStockCount   int64 `json:"low_stock_count"`
	OutOfStockCount int64 `json:"out_of_stock_count"`
	TotalStock      int64 `json:"total_stock"`
	TotalLocations  int64 `json:"total_locations"`
	PendingOrders   int64 `json:"pending_orders"`
	Degraded        bool  `json:"degraded"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

type CategoriesResponse struct {
	Items    []CategoryCount `json:"items"`
	Degraded bool            `json:"degraded"`
}

type LocationStock struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type LocationsStockResponse struct {
	Items    []LocationStock `json:"items"`
	Degraded bool            `json:"degraded"`
}

type Transaction struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"transaction_type"`
	Quantity     int64      `json:"quantity"`
	CreatedAt    time.Time  `json:"created_at"`
	ProductID    *uuid.UUID `json:"product_id"`
	ProductName  string     `json:"product_name"`
	ProductSKU   string     `json:"product_sku"`
	LocationID   *uuid.UUID `json:"location_id"`
	LocationName string     `json:"location_name"`
}

type RecentTransactionsResponse struct {
	Items    []Transaction `json:"items"`
	Degraded bool          `json:"degraded"`
}

type PendingPurchaseOrder struct {
	ID           uuid.UUID  `json:"id"`
	PONumber     string     `json:"po_number"`
	Status       string     `json:"status"`
	OrderDate    time.Time  `json:"order_date"`
	ExpectedDate *time.Time `json:"expected_date"`
	SupplierID   *uuid.UUID `json:"supplier_id"`
	SupplierName string     `json:"supplier_name"`
}

type PendingPurchaseOrdersResponse struct {
	Items    []PendingPurchaseOrder `json:"items"`
	Degraded bool                   `json:"degraded"`
}

type LowStockItem struct {
	ProductID    uuid.UUID `json:"product_id"`
	ProductName  string    `json:"product_name"`
	SKU          string    `json:"sku"`
	Quantity     int64     `json:"quantity"`
	ReorderLevel int64     `json:"reorder_level"`
}

type LowStockResponse struct {
	Items    []LowStockItem `json:"items"`
	Degraded bool           `json:"degraded"`
}

type OverviewResponse struct {
	Stats              StatsResponse                 `json:"stats"`
	RecentTransactions RecentTransactionsResponse    `json:"recent_transactions"`
	PendingOrders      PendingPurchaseOrdersResponse `json:"pending_orders"`
	Categories         CategoriesResponse            `json:"categories"`
	Locations          LocationsStockResponse        `json:"locations"`
	LowStock           LowStockResponse              `json:"low_stock"`
	Degraded           bool                          `json:"degraded"`
}

// PurchaseOrderLine amounts are encoded as decimal strings.
type PurchaseOrderLine struct {
	ID               uuid.UUID       `json:"id"`
	ProductID        uuid.UUID       `json:"product_id"`
	ProductName      string          `json:"product_name"`
	SKU              string          `json:"sku"`
	OrderedQuantity  int64           `json:"ordered_quantity"`
	ReceivedQuantity int64           `json:"received_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	LineTotal        decimal.Decimal `json:"line_total"`
}

type PurchaseOrderResponse struct {
	ID           uuid.UUID           `json:"id"`
	PONumber     string              `json:"po_number"`
	Status       string              `json:"status"`
	OrderDate    time.Time           `json:"order_date"`
	ExpectedDate *time.Time          `json:"expected_date"`
	Notes        *string             `json:"notes"`
	CreatedBy    *uuid.UUID          `json:"created_by"`
	SupplierID   *uuid.UUID          `json:"supplier_id"`
	SupplierName string              `json:"supplier_name"`
	LocationID   *uuid.UUID          `json:"location_id"`
	LocationName string              `json:"location_name"`
	Lines        []PurchaseOrderLine `json:"lines"`
	Total        decimal.Decimal     `json:"total"`
}
