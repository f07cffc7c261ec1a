package model

import (
	"time"

	"github.com/google/uuid"
)

// Display values used when a referenced row cannot be resolved.
const (
	PlaceholderNotAvailable  = "N/A"
	PlaceholderUnknown       = "Unknown"
	PlaceholderUncategorized = "Uncategorized"
)

type Product struct {
	ID         uuid.UUID
	Name       string
	SKU        string
	CategoryID *uuid.UUID
	// Stock threshold below which the product is low on stock. Zero disables tracking.
	ReorderLevel int64
}

// InventoryRow is the stock of one product at one location. A product may
// have many rows.
type InventoryRow struct {
	ProductID  uuid.UUID
	LocationID *uuid.UUID
	Quantity   int64
}

type Location struct {
	ID       uuid.UUID
	Name     string
	IsActive bool
}

type Category struct {
	ID   uuid.UUID
	Name string
}

type Supplier struct {
	ID   uuid.UUID
	Name string
}

type TransactionType string

const (
	TransactionTypeReceipt    TransactionType = "receipt"
	TransactionTypeIssue      TransactionType = "issue"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeTransfer   TransactionType = "transfer"
)

type Transaction struct {
	ID         uuid.UUID
	Type       TransactionType
	Quantity   int64
	CreatedAt  time.Time
	ProductID  *uuid.UUID
	LocationID *uuid.UUID
}
