package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestItemsTotal_SumsQuantityTimesPrice(t *testing.T) {
	order := sampleOrder()

	total, err := order.ItemsTotal()
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("59.98").Equal(total), total.String())

	count, err := order.ItemCount()
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func TestItemsTotal_IndependentOfItemOrder(t *testing.T) {
	order := sampleOrder()
	reversed := order.Clone()
	reversed.Items[0], reversed.Items[1] = reversed.Items[1], reversed.Items[0]

	a, err := order.ItemsTotal()
	require.NoError(t, err)
	b, err := reversed.ItemsTotal()
	require.NoError(t, err)
	require.True(t, a.Equal(b))
}

func TestItemsTotal_NoFloatDrift(t *testing.T) {
	order := &Order{}
	for i := 0; i < 10; i++ {
		order.Items = append(order.Items, OrderItem{OrderedQuantity: 1, OrderedPrice: decimal.RequireFromString("0.1")})
	}
	total, err := order.ItemsTotal()
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(1).Equal(total))
}

func TestItemsTotal_RejectsNegativeInput(t *testing.T) {
	order := sampleOrder()
	order.Items[1].OrderedPrice = decimal.NewFromInt(-5)
	_, err := order.ItemsTotal()
	require.ErrorIs(t, err, ErrInvalidPrice)

	order = sampleOrder()
	order.Items[0].OrderedQuantity = -2
	_, err = order.ItemsTotal()
	require.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = order.ItemCount()
	require.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestTotalRevenueAndPaidOrders(t *testing.T) {
	a := sampleOrder()
	b := sampleOrder()
	b.TotalPrice = decimal.RequireFromString("10.02")
	b.IsPaid = true

	revenue, err := TotalRevenue([]*Order{a, nil, b})
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("73.50").Equal(revenue), revenue.String())
	require.Equal(t, int64(1), TotalPaidOrders([]*Order{a, b}))

	b.TotalPrice = decimal.NewFromInt(-1)
	_, err = TotalRevenue([]*Order{a, b})
	require.ErrorIs(t, err, ErrInvalidPrice)

	empty, err := TotalRevenue(nil)
	require.NoError(t, err)
	require.True(t, empty.IsZero())
}
