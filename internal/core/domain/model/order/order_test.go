package order_test

import (
	"strings"
	"testing"
	"time"

	"tehnoplast/internal/core/domain/model/kernel"
	"tehnoplast/internal/core/domain/model/order"
	"tehnoplast/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustINN(t *testing.T) kernel.INN {
	t.Helper()
	inn, err := kernel.NewINN("7707083893")
	require.NoError(t, err)
	return inn
}

func mustGLN(t *testing.T) kernel.GLN {
	t.Helper()
	gln, err := kernel.NewGLN("4607034440008")
	require.NoError(t, err)
	return gln
}

func mustItem(t *testing.T, quantity int, price string) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(), kernel.NewUUID(), quantity, decimal.RequireFromString(price))
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	deliveryDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		items := []*order.Item{mustItem(t, 10, "25.50"), mustItem(t, 3, "100")}

		o, err := order.NewOrder(id, "ORD-2026-001", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), items)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-2026-001", o.Number())
		assert.Equal(t, orderDate, o.OrderDate())
		assert.Equal(t, deliveryDate, o.DeliveryDate())
		assert.Equal(t, "7707083893", o.CounteragentINN().String())
		assert.Equal(t, "4607034440008", o.WarehouseGLN().String())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("should reject empty number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject number longer than 50 characters", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), strings.Repeat("x", 51), orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept number of exactly 50 characters", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), strings.Repeat("x", 50), orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})

		require.NoError(t, err)
		assert.Len(t, o.Number(), 50)
	})

	t.Run("should reject delivery date before order date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1",
			deliveryDate, orderDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept delivery date equal to order date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, orderDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})

		require.NoError(t, err)
	})

	t.Run("should reject missing dates", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", time.Time{}, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})
		require.Error(t, err)
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), nil)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject duplicate item ids", func(t *testing.T) {
		item := mustItem(t, 5, "10")

		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{item, item})

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrDuplicateItem)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "", time.Time{}, time.Time{},
			kernel.INN{}, kernel.GLN{}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "items")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil order", func(t *testing.T) {
		var o *order.Order

		require.Error(t, o.Validate())
	})
}

func TestOrder_Totals(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	deliveryDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("should derive totals from items", func(t *testing.T) {
		items := []*order.Item{
			mustItem(t, 10, "25.50"), // 255.00
			mustItem(t, 3, "100"),    // 300.00
		}
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), items)
		require.NoError(t, err)

		assert.Equal(t, 2, o.ItemsCount())
		assert.Equal(t, 13, o.TotalQuantity())
		assert.True(t, o.TotalAmount().Equal(decimal.RequireFromString("555.00")),
			"got %s", o.TotalAmount())
	})
}

func TestOrder_AddItem(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	deliveryDate := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	t.Run("should append new item", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{mustItem(t, 1, "1")})
		require.NoError(t, err)

		require.NoError(t, o.AddItem(mustItem(t, 2, "5")))
		assert.Equal(t, 2, o.ItemsCount())
	})

	t.Run("should reject duplicate item", func(t *testing.T) {
		item := mustItem(t, 1, "1")
		o, err := order.NewOrder(kernel.NewUUID(), "ORD-1", orderDate, deliveryDate,
			mustINN(t), mustGLN(t), []*order.Item{item})
		require.NoError(t, err)

		require.ErrorIs(t, o.AddItem(item), order.ErrDuplicateItem)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should create valid item", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()

		item, err := order.NewItem(id, productID, 7, decimal.RequireFromString("12.30"))

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.True(t, item.ID().IsEqual(id))
		assert.True(t, item.ProductID().IsEqual(productID))
		assert.Equal(t, 7, item.Quantity())
		assert.True(t, item.Total().Equal(decimal.RequireFromString("86.10")))
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), quantity, decimal.NewFromInt(1))

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject negative unit price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1, decimal.Zero)

		require.NoError(t, err)
		assert.True(t, item.Total().IsZero())
	})
}
