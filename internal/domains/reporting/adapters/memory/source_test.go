package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	ordermemory "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/memory"
	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

func seed(t *testing.T) *ordermemory.Repository {
	t.Helper()
	repo := ordermemory.NewRepository()
	add := func(method string, status orderdomain.Status, created time.Time, total string, items ...orderdomain.OrderItem) {
		_, err := repo.Save(context.Background(), &orderdomain.Order{
			FullName:      "Customer",
			PaymentMethod: method,
			Status:        status,
			TotalPrice:    decimal.RequireFromString(total),
			CreatedDate:   created,
			Items:         items,
		})
		require.NoError(t, err)
	}
	tee := func(qty int32) orderdomain.OrderItem {
		return orderdomain.OrderItem{ProductName: "Tee", OrderedQuantity: qty, OrderedPrice: decimal.NewFromInt(10)}
	}
	capItem := func(qty int32) orderdomain.OrderItem {
		return orderdomain.OrderItem{ProductName: "Cap", OrderedQuantity: qty, OrderedPrice: decimal.NewFromInt(5)}
	}
	add("COD", orderdomain.StatusDelivered, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "60", tee(2), capItem(1))
	add("COD", orderdomain.StatusDelivered, time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), "40", tee(1))
	add("VISA", orderdomain.StatusDelivered, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), "30", capItem(3))
	add("VISA", orderdomain.StatusCancel, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), "99", tee(50))
	add("COD", orderdomain.StatusDelivered, time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC), "70", capItem(1))
	return repo
}

func TestSource_StatusOverview(t *testing.T) {
	records, err := NewSource(seed(t)).StatusOverview(context.Background())
	require.NoError(t, err)

	histogram, err := domain.BuildStatusHistogram(records)
	require.NoError(t, err)
	require.Equal(t, orderdomain.StatusCancel, histogram[0].Status)
	require.True(t, histogram[0].Total.Equal(decimal.NewFromInt(1)))
	require.True(t, histogram[1].Total.Equal(decimal.NewFromInt(4)))
}

func TestSource_SalesStatisticScopesYearAndDelivered(t *testing.T) {
	records, err := NewSource(seed(t)).SalesStatistic(context.Background(), 2024)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "COD", records[0].Method)
	require.Equal(t, 3, records[0].Month)
	require.True(t, records[0].Total.Equal(decimal.NewFromInt(100)))
	require.Equal(t, "VISA", records[1].Method)
	require.True(t, records[1].Total.Equal(decimal.NewFromInt(30)))
}

func TestSource_TopSellingIgnoresCancelled(t *testing.T) {
	records, err := NewSource(seed(t)).TopSelling(context.Background(), 5)
	require.NoError(t, err)
	require.Equal(t, []domain.TopSellingRecord{{Name: "Cap", Sold: 5}, {Name: "Tee", Sold: 3}}, records)

	limited, err := NewSource(seed(t)).TopSelling(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
}

func TestSource_TotalProductsCountsDistinctNames(t *testing.T) {
	repo := seed(t)
	_, err := repo.Save(context.Background(), &orderdomain.Order{
		FullName:    "Customer",
		Status:      orderdomain.StatusProcessing,
		CreatedDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Items: []orderdomain.OrderItem{
			{ProductName: " Tee ", OrderedQuantity: 1, OrderedPrice: decimal.NewFromInt(10)},
			{ProductName: "Socks", OrderedQuantity: 1, OrderedPrice: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	total, err := NewSource(repo).TotalProducts(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(3), total)
}
