package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/stock-dashboard/internal/model"
	"github.com/you-humble/stock-dashboard/internal/service/mocks"
	"github.com/you-humble/stock-dashboard/platform/logger"
)

func TestServicePurchaseOrderDetail(t *testing.T) {
	t.Parallel()
	logger.SetNopLogger()

	type deps struct {
		repository *mocks.MockPurchaseOrderRepository
	}

	newSvc := func(d deps) *service {
		return NewPurchaseOrderService(d.repository, time.Second)
	}

	type testCase struct {
		name   string
		id     uuid.UUID
		setup  func(d deps)
		assert func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps)
	}

	orderID := uuid.New()
	supplierID := uuid.New()
	locationID := uuid.New()
	bolt := model.Product{ID: uuid.New(), Name: "Bolt", SKU: "BLT-01"}
	goneProductID := uuid.New()

	order := &model.PurchaseOrder{
		ID:         orderID,
		PONumber:   "PO-" + gofakeit.DigitN(6),
		Status:     model.PurchaseOrderStatusSubmitted,
		OrderDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Notes:      lo.ToPtr(gofakeit.Sentence(5)),
		SupplierID: &supplierID,
		LocationID: &locationID,
	}
	orphan := &model.PurchaseOrder{
		ID:        orderID,
		PONumber:  "PO-" + gofakeit.DigitN(6),
		Status:    model.PurchaseOrderStatusDraft,
		OrderDate: order.OrderDate,
	}
	items := []model.PurchaseOrderItem{
		{
			ID:               uuid.New(),
			PurchaseOrderID:  orderID,
			ProductID:        bolt.ID,
			OrderedQuantity:  3,
			ReceivedQuantity: lo.ToPtr(int64(1)),
			UnitCost:         lo.ToPtr(decimal.RequireFromString("2.50")),
		},
		{
			ID:              uuid.New(),
			PurchaseOrderID: orderID,
			ProductID:       goneProductID,
			OrderedQuantity: 4,
		},
	}
	dbErr := errors.New("db read failed")

	tests := []testCase{
		{
			name: "validation error: nil uuid",
			id:   uuid.Nil,
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.repository.AssertNotCalled(t, "PurchaseOrderByID", mock.Anything, mock.Anything)
			},
		},
		{
			name: "not found: order is missing",
			id:   orderID,
			setup: func(d deps) {
				d.repository.
					On("PurchaseOrderByID", mock.Anything, orderID).
					Return((*model.PurchaseOrder)(nil), model.ErrPurchaseOrderNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrPurchaseOrderNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name: "success: names resolved and totals computed",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(order, nil).Once()
				d.repository.On("SupplierByID", mock.Anything, supplierID).
					Return(&model.Supplier{ID: supplierID, Name: "Acme"}, nil).Once()
				d.repository.On("LocationByID", mock.Anything, locationID).
					Return(&model.Location{ID: locationID, Name: "Warehouse", IsActive: true}, nil).Once()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).Return(items, nil).Once()
				d.repository.On("ProductsByIDs", mock.Anything, mock.Anything).
					Return([]model.Product{bolt}, nil)
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, order.PONumber, res.PONumber)
				assert.Equal(t, order.Notes, res.Notes)
				assert.Equal(t, "Acme", res.SupplierName)
				assert.Equal(t, "Warehouse", res.LocationName)

				require.Len(t, res.Lines, 2)
				assert.Equal(t, "Bolt", res.Lines[0].ProductName)
				assert.Equal(t, "BLT-01", res.Lines[0].SKU)
				assert.Equal(t, int64(1), res.Lines[0].ReceivedQuantity)
				assert.True(t, decimal.RequireFromString("7.5").Equal(res.Lines[0].LineTotal))

				assert.Equal(t, model.PlaceholderNotAvailable, res.Lines[1].ProductName)
				assert.Equal(t, model.PlaceholderNotAvailable, res.Lines[1].SKU)
				assert.Equal(t, int64(0), res.Lines[1].ReceivedQuantity)
				assert.True(t, res.Lines[1].UnitCost.IsZero())
				assert.True(t, res.Lines[1].LineTotal.IsZero())

				assert.True(t, decimal.RequireFromString("7.5").Equal(res.Total))
			},
		},
		{
			name: "success: no supplier or location references",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(orphan, nil).Once()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).
					Return([]model.PurchaseOrderItem{}, nil).Once()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, model.PlaceholderNotAvailable, res.SupplierName)
				assert.Equal(t, model.PlaceholderNotAvailable, res.LocationName)
				assert.Empty(t, res.Lines)
				assert.True(t, res.Total.IsZero())

				d.repository.AssertNotCalled(t, "SupplierByID", mock.Anything, mock.Anything)
				d.repository.AssertNotCalled(t, "LocationByID", mock.Anything, mock.Anything)
				d.repository.AssertNotCalled(t, "ProductsByIDs", mock.Anything, mock.Anything)
			},
		},
		{
			name: "success: deleted supplier and location render placeholders",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(order, nil).Once()
				d.repository.On("SupplierByID", mock.Anything, supplierID).
					Return((*model.Supplier)(nil), model.ErrSupplierNotFound).Once()
				d.repository.On("LocationByID", mock.Anything, locationID).
					Return((*model.Location)(nil), model.ErrLocationNotFound).Once()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).
					Return([]model.PurchaseOrderItem{}, nil).Once()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)

				assert.Equal(t, model.PlaceholderNotAvailable, res.SupplierName)
				assert.Equal(t, model.PlaceholderNotAvailable, res.LocationName)
			},
		},
		{
			name: "repository error: order read fails",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).
					Return((*model.PurchaseOrder)(nil), dbErr).Once()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbErr)
				assert.ErrorIs(t, err, model.ErrPurchaseOrderLoad)
				assert.Nil(t, res)
			},
		},
		{
			name: "repository error: items read fails",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(orphan, nil).Once()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).
					Return([]model.PurchaseOrderItem(nil), dbErr).Once()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbErr)
				assert.ErrorIs(t, err, model.ErrPurchaseOrderItemsLoad)
				assert.Nil(t, res)
			},
		},
		{
			name: "repository error: supplier read fails",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(order, nil).Once()
				d.repository.On("SupplierByID", mock.Anything, supplierID).
					Return((*model.Supplier)(nil), dbErr).Once()
				d.repository.On("LocationByID", mock.Anything, locationID).
					Return(&model.Location{ID: locationID, Name: "Warehouse"}, nil).Maybe()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).Return(items, nil).Maybe()
				d.repository.On("ProductsByIDs", mock.Anything, mock.Anything).
					Return([]model.Product{bolt}, nil).Maybe()
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbErr)
				assert.ErrorIs(t, err, model.ErrSupplierLoad)
				assert.Nil(t, res)
			},
		},
		{
			name: "repository error: product lookup fails",
			id:   orderID,
			setup: func(d deps) {
				d.repository.On("PurchaseOrderByID", mock.Anything, orderID).Return(orphan, nil).Once()
				d.repository.On("PurchaseOrderItems", mock.Anything, orderID).Return(items, nil).Once()
				d.repository.On("ProductsByIDs", mock.Anything, mock.Anything).
					Return([]model.Product(nil), dbErr)
			},
			assert: func(t *testing.T, res *model.PurchaseOrderDetail, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, dbErr)
				assert.ErrorIs(t, err, model.ErrProductsLoad)
				assert.Nil(t, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				repository: mocks.NewMockPurchaseOrderRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.PurchaseOrderDetail(context.Background(), tt.id)
			tt.assert(t, res, err, d)
		})
	}
}

func TestPriceLines(t *testing.T) {
	t.Parallel()

	widget := model.Product{ID: uuid.New(), Name: "Widget", SKU: "WDG"}
	items := []model.PurchaseOrderItem{
		{ID: uuid.New(), ProductID: widget.ID, OrderedQuantity: 3, UnitCost: lo.ToPtr(decimal.RequireFromString("0.10"))},
		{ID: uuid.New(), ProductID: widget.ID, OrderedQuantity: 7, UnitCost: lo.ToPtr(decimal.RequireFromString("0.20"))},
	}

	lines, total := priceLines(items, map[uuid.UUID]model.Product{widget.ID: widget})

	require.Len(t, lines, 2)
	assert.True(t, decimal.RequireFromString("0.3").Equal(lines[0].LineTotal))
	assert.True(t, decimal.RequireFromString("1.4").Equal(lines[1].LineTotal))
	assert.True(t, decimal.RequireFromString("1.7").Equal(total))
	assert.Equal(t, "Widget", lines[1].ProductName)
}
