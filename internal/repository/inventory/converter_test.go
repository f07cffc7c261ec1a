package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/stock-dashboard/internal/model"
)

func TestNumericToDecimal(t *testing.T) {
	t.Parallel()

	var n pgtype.Numeric
	require.NoError(t, n.Scan("10.50"))

	d := numericToDecimal(n)
	require.NotNil(t, d)
	assert.True(t, d.Equal(decimal.RequireFromString("10.5")), d.String())

	assert.Nil(t, numericToDecimal(pgtype.Numeric{}))
	assert.Nil(t, numericToDecimal(pgtype.Numeric{Valid: true, NaN: true}))
	assert.Nil(t, numericToDecimal(pgtype.Numeric{Valid: true, InfinityModifier: pgtype.Infinity}))
}

func TestPurchaseOrderItemToModel(t *testing.T) {
	t.Parallel()

	var cost pgtype.Numeric
	require.NoError(t, cost.Scan("2.25"))

	e := purchaseOrderItemEntity{
		ID:              uuid.New(),
		PurchaseOrderID: uuid.New(),
		ProductID:       uuid.New(),
		OrderedQuantity: 4,
		UnitCost:        cost,
	}

	m := purchaseOrderItemToModel(e)
	assert.Equal(t, e.ID, m.ID)
	assert.Equal(t, int64(4), m.OrderedQuantity)
	assert.Nil(t, m.ReceivedQuantity)
	require.NotNil(t, m.UnitCost)
	assert.Equal(t, "2.25", m.UnitCost.String())
}

func TestStatusArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"submitted", "approved"},
		statusArgs(model.PendingPurchaseOrderStatuses()),
	)
}
