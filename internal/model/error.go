package model

import "errors"

var (
	ErrValidation            = errors.New("validation error")         // 400
	ErrPurchaseOrderNotFound = errors.New("purchase order not found") // 404
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrLocationNotFound      = errors.New("location not found")
	ErrRateLimited           = errors.New("rate limited")        // 429
	ErrServiceUnavailable    = errors.New("service unavailable") // 503
)

// Purchase order read failures. Their text is shown to the caller in place
// of the underlying database error.
var (
	ErrPurchaseOrderLoad      = errors.New("failed to load purchase order")       // 500
	ErrSupplierLoad           = errors.New("failed to load supplier")             // 500
	ErrLocationLoad           = errors.New("failed to load location")             // 500
	ErrPurchaseOrderItemsLoad = errors.New("failed to load purchase order items") // 500
	ErrProductsLoad           = errors.New("failed to load products")             // 500
)
