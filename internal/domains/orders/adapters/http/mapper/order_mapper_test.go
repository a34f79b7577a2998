package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func mappedOrder() *domain.Order {
	return &domain.Order{
		ID:            9,
		FullName:      "Jane Roe",
		PaymentMethod: domain.MethodCOD,
		Status:        domain.StatusDelivering,
		TotalPrice:    decimal.RequireFromString("43.50"),
		CreatedDate:   time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
		Items: []domain.OrderItem{
			{VariantID: 1, ProductName: "Tee", OrderedQuantity: 2, OrderedPrice: decimal.RequireFromString("19.99")},
			{VariantID: 2, ProductName: "Cap", OrderedQuantity: 1, OrderedPrice: decimal.RequireFromString("3.52")},
		},
	}
}

func TestFromDomainOrder_DerivesTotalsAndLabels(t *testing.T) {
	out, err := FromDomainOrder(mappedOrder())
	require.NoError(t, err)
	require.Equal(t, "delivering", out.OrderStatus)
	require.Equal(t, "In progress shipping", out.StatusLabel)
	require.Equal(t, int64(3), out.ItemCount)
	require.True(t, decimal.RequireFromString("43.50").Equal(out.ItemsTotal), out.ItemsTotal.String())
	require.Len(t, out.OrderItems, 2)
}

func TestFromDomainOrder_InconsistentItemsFail(t *testing.T) {
	order := mappedOrder()
	order.Items[1].OrderedQuantity = -1
	_, err := FromDomainOrder(order)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	order = mappedOrder()
	order.Items[0].OrderedPrice = decimal.NewFromInt(-2)
	_, err = FromDomainOrder(order)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestFromDomainPage_PropagatesItemErrors(t *testing.T) {
	bad := mappedOrder()
	bad.Items[0].OrderedPrice = decimal.NewFromInt(-2)
	page := pagination.Page[*domain.Order]{Items: []*domain.Order{mappedOrder(), bad}, Total: 2, Page: 1, Limit: 10}

	_, err := FromDomainPage(page)
	require.ErrorIs(t, err, domain.ErrInvalidPrice)

	page.Items = page.Items[:1]
	out, err := FromDomainPage(page)
	require.NoError(t, err)
	require.Len(t, out.Data, 1)
	require.Equal(t, int64(2), out.Total)
}
