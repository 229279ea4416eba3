package order_test

import (
	"testing"
	"time"

	"salesledger/internal/core/domain/model/kernel"
	"salesledger/internal/core/domain/model/order"
	"salesledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func testAddress(t *testing.T) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("Obere Str. 57", "Berlin", "Germany")
	require.NoError(t, err)
	return addr
}

func testLines(t *testing.T) []order.Line {
	t.Helper()
	first, err := order.NewLine(98, 10, decimal.RequireFromString("12.50"))
	require.NoError(t, err)
	second, err := order.NewLine(42, 3, decimal.RequireFromString("4.00"))
	require.NoError(t, err)
	return []order.Line{first, second}
}

func TestNewOrder_ValidInput(t *testing.T) {
	addr := testAddress(t)
	lines := testLines(t)
	discount := decimal.RequireFromString("0.15")

	o, err := order.NewOrder("2COM", discount, addr, lines, orderDate)
	require.NoError(t, err)

	assert.Equal(t, 0, o.ID(), "identifier is assigned by storage, not the constructor")
	assert.Equal(t, "2COM", o.CustomerID())
	assert.Equal(t, orderDate, o.PlacedAt())
	assert.Nil(t, o.ShippedAt())
	assert.False(t, o.IsShipped())
	assert.True(t, o.Discount().Equal(discount))
	assert.Equal(t, addr, o.ShippingAddress())
	assert.Equal(t, lines, o.Lines())
	require.NoError(t, o.Validate())
}

func TestNewOrder_InvalidInput(t *testing.T) {
	addr := testAddress(t)
	lines := testLines(t)

	tests := []struct {
		name       string
		customerID string
		discount   decimal.Decimal
		address    kernel.Address
		lines      []order.Line
		placedAt   time.Time
	}{
		{
			name:       "empty customer id",
			customerID: "",
			discount:   decimal.Zero,
			address:    addr,
			lines:      lines,
			placedAt:   orderDate,
		},
		{
			name:       "negative discount",
			customerID: "2COM",
			discount:   decimal.New(-1, -2),
			address:    addr,
			lines:      lines,
			placedAt:   orderDate,
		},
		{
			name:       "discount of one or more",
			customerID: "2COM",
			discount:   decimal.NewFromInt(1),
			address:    addr,
			lines:      lines,
			placedAt:   orderDate,
		},
		{
			name:       "zero value address",
			customerID: "2COM",
			discount:   decimal.Zero,
			address:    kernel.Address{},
			lines:      lines,
			placedAt:   orderDate,
		},
		{
			name:       "no lines",
			customerID: "2COM",
			discount:   decimal.Zero,
			address:    addr,
			lines:      nil,
			placedAt:   orderDate,
		},
		{
			name:       "unconstructed line",
			customerID: "2COM",
			discount:   decimal.Zero,
			address:    addr,
			lines:      []order.Line{{}},
			placedAt:   orderDate,
		},
		{
			name:       "zero placed date",
			customerID: "2COM",
			discount:   decimal.Zero,
			address:    addr,
			lines:      lines,
			placedAt:   time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := order.NewOrder(tt.customerID, tt.discount, tt.address, tt.lines, tt.placedAt)
			require.Error(t, err)
		})
	}
}

func TestRestoreOrder(t *testing.T) {
	addr := testAddress(t)
	lines := testLines(t)

	t.Run("restores persisted state", func(t *testing.T) {
		shippedAt := orderDate.AddDate(0, 0, 2)

		o, err := order.RestoreOrder(99998, "2COM", decimal.RequireFromString("0.15"),
			addr, lines, orderDate, &shippedAt)
		require.NoError(t, err)

		assert.Equal(t, 99998, o.ID())
		assert.True(t, o.IsShipped())
		require.NotNil(t, o.ShippedAt())
		assert.Equal(t, shippedAt, *o.ShippedAt())
	})

	t.Run("restores unshipped order", func(t *testing.T) {
		o, err := order.RestoreOrder(99999, "2COM", decimal.Zero, addr, lines, orderDate, nil)
		require.NoError(t, err)
		assert.False(t, o.IsShipped())
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		_, err := order.RestoreOrder(0, "2COM", decimal.Zero, addr, lines, orderDate, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil order fails validation", func(t *testing.T) {
		var o *order.Order
		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		o := &order.Order{}
		err := o.Validate()
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_RecordShipment(t *testing.T) {
	addr := testAddress(t)
	shipDate := orderDate.AddDate(0, 0, 1)

	newOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder("2COM", decimal.Zero, addr, testLines(t), orderDate)
		require.NoError(t, err)
		return o
	}

	t.Run("sets the shipment date once", func(t *testing.T) {
		o := newOrder(t)

		shipped, err := o.RecordShipment(shipDate)
		require.NoError(t, err)
		assert.True(t, shipped)
		require.NotNil(t, o.ShippedAt())
		assert.Equal(t, shipDate, *o.ShippedAt())
	})

	t.Run("re-recording is a no-op", func(t *testing.T) {
		o := newOrder(t)

		shipped, err := o.RecordShipment(shipDate)
		require.NoError(t, err)
		require.True(t, shipped)

		later := shipDate.AddDate(0, 0, 5)
		shipped, err = o.RecordShipment(later)
		require.NoError(t, err)
		assert.False(t, shipped)
		assert.Equal(t, shipDate, *o.ShippedAt(), "original shipment date must be preserved")
	})

	t.Run("rejects zero date", func(t *testing.T) {
		o := newOrder(t)

		_, err := o.RecordShipment(time.Time{})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed order", func(t *testing.T) {
		o := &order.Order{}
		_, err := o.RecordShipment(shipDate)
		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_ShippedAtReturnsCopy(t *testing.T) {
	o, err := order.NewOrder("2COM", decimal.Zero, testAddress(t), testLines(t), orderDate)
	require.NoError(t, err)

	shipDate := orderDate.AddDate(0, 0, 1)
	_, err = o.RecordShipment(shipDate)
	require.NoError(t, err)

	got := o.ShippedAt()
	*got = got.AddDate(1, 0, 0)
	assert.Equal(t, shipDate, *o.ShippedAt(), "mutating the returned pointer must not affect the aggregate")
}

func TestOrder_LinesAreImmutable(t *testing.T) {
	lines := testLines(t)
	o, err := order.NewOrder("2COM", decimal.Zero, testAddress(t), lines, orderDate)
	require.NoError(t, err)

	got := o.Lines()
	got[0] = order.Line{}
	assert.Equal(t, lines, o.Lines(), "mutating the returned slice must not affect the aggregate")
}

func TestOrder_Total(t *testing.T) {
	t.Run("sums lines without discount", func(t *testing.T) {
		o, err := order.NewOrder("0COM", decimal.Zero, testAddress(t), testLines(t), orderDate)
		require.NoError(t, err)

		// 10 * 12.50 + 3 * 4.00 = 137.00
		assert.True(t, o.Total().Equal(decimal.RequireFromString("137")),
			"got %s", o.Total())
	})

	t.Run("applies the discount rate", func(t *testing.T) {
		o, err := order.NewOrder("2COM", decimal.RequireFromString("0.15"),
			testAddress(t), testLines(t), orderDate)
		require.NoError(t, err)

		// 137.00 * 0.85 = 116.45
		assert.True(t, o.Total().Equal(decimal.RequireFromString("116.45")),
			"got %s", o.Total())
	})
}

func TestOrder_IsEqual(t *testing.T) {
	addr := testAddress(t)
	lines := testLines(t)

	a, err := order.RestoreOrder(1, "2COM", decimal.Zero, addr, lines, orderDate, nil)
	require.NoError(t, err)
	b, err := order.RestoreOrder(1, "0COM", decimal.Zero, addr, lines, orderDate, nil)
	require.NoError(t, err)
	c, err := order.RestoreOrder(2, "2COM", decimal.Zero, addr, lines, orderDate, nil)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))

	unpersisted, err := order.NewOrder("2COM", decimal.Zero, addr, lines, orderDate)
	require.NoError(t, err)
	assert.False(t, unpersisted.IsEqual(unpersisted), "unpersisted orders have no identity yet")
}
