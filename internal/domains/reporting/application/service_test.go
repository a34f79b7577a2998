package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

type fakeSource struct {
	overview []domain.StatusOverviewRecord
	sales    []domain.SalesRecord
	top      []domain.TopSellingRecord
	orders   []*orderdomain.Order
	products int64
	err      error

	lastYear  int32
	lastLimit int32
}

func (f *fakeSource) StatusOverview(context.Context) ([]domain.StatusOverviewRecord, error) {
	return f.overview, f.err
}

func (f *fakeSource) SalesStatistic(_ context.Context, year int) ([]domain.SalesRecord, error) {
	atomic.StoreInt32(&f.lastYear, int32(year))
	return f.sales, f.err
}

func (f *fakeSource) TopSelling(_ context.Context, limit int) ([]domain.TopSellingRecord, error) {
	atomic.StoreInt32(&f.lastLimit, int32(limit))
	return f.top, f.err
}

func (f *fakeSource) Orders(context.Context) ([]*orderdomain.Order, error) {
	return f.orders, f.err
}

func (f *fakeSource) TotalProducts(context.Context) (int64, error) {
	return f.products, f.err
}

func healthySource() *fakeSource {
	return &fakeSource{
		overview: []domain.StatusOverviewRecord{
			{Status: "delivered", Total: decimal.NewFromInt(5)},
			{Status: "cancel", Total: decimal.NewFromInt(2)},
		},
		sales: []domain.SalesRecord{
			{Method: "COD", Month: 3, Total: decimal.NewFromInt(100)},
			{Method: "VISA", Month: 3, Total: decimal.NewFromInt(30)},
		},
		top:      []domain.TopSellingRecord{{Name: "Tee", Sold: 9}, {Name: "Cap", Sold: 4}},
		products: 14,
		orders: []*orderdomain.Order{
			{TotalPrice: decimal.RequireFromString("12.50"), IsPaid: true},
			{TotalPrice: decimal.RequireFromString("7.50")},
		},
	}
}

var fixedClock = WithClock(func() time.Time { return time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC) })

func TestDashboard_AggregatesEverything(t *testing.T) {
	source := healthySource()
	svc := NewService(source, fixedClock)

	dashboard, err := svc.Dashboard(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 2024, dashboard.Year)
	require.Equal(t, int32(2024), atomic.LoadInt32(&source.lastYear))
	require.Equal(t, int32(DefaultTopSellingLimit), atomic.LoadInt32(&source.lastLimit))

	require.Len(t, dashboard.Histogram, 6)
	require.Equal(t, orderdomain.StatusCancel, dashboard.Histogram[0].Status)
	require.Equal(t, []string{"COD", "VISA"}, dashboard.Sales.Methods)
	require.Len(t, dashboard.TopSelling, 2)
	require.True(t, decimal.NewFromInt(20).Equal(dashboard.Summary.TotalRevenue))
	require.Equal(t, int64(2), dashboard.Summary.TotalOrders)
	require.Equal(t, int64(1), dashboard.Summary.TotalPaidOrders)
	require.Equal(t, int64(14), dashboard.TotalProducts)
}

func TestTotalProducts_NegativeCountIsMalformed(t *testing.T) {
	source := healthySource()
	source.products = -1

	_, err := NewService(source).TotalProducts(context.Background())
	require.ErrorIs(t, err, ErrMalformedData)
	require.ErrorIs(t, err, domain.ErrInvalidProductCount)
}

func TestDashboard_SourceFailure(t *testing.T) {
	source := healthySource()
	source.err = errors.New("upstream 503")
	svc := NewService(source, fixedClock)

	_, err := svc.Dashboard(context.Background(), 2024, 5)
	require.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestStatusHistogram_MalformedSourceData(t *testing.T) {
	source := healthySource()
	source.overview = append(source.overview, domain.StatusOverviewRecord{Status: "cancel", Total: decimal.NewFromInt(1)})
	svc := NewService(source)

	_, err := svc.StatusHistogram(context.Background())
	require.ErrorIs(t, err, ErrMalformedData)
	require.ErrorIs(t, err, domain.ErrDuplicateStatusKey)
}

func TestMonthlySales_InvalidMonthFromSource(t *testing.T) {
	source := healthySource()
	source.sales = []domain.SalesRecord{{Method: "COD", Month: 13, Total: decimal.NewFromInt(1)}}
	svc := NewService(source)

	_, err := svc.MonthlySales(context.Background(), 2024)
	require.ErrorIs(t, err, domain.ErrInvalidMonth)
}

func TestTopSelling_LimitValidationAndTruncation(t *testing.T) {
	source := healthySource()
	svc := NewService(source)

	_, err := svc.TopSelling(context.Background(), -1)
	require.ErrorIs(t, err, ErrInvalidInput)
	_, err = svc.TopSelling(context.Background(), MaxTopSellingLimit+1)
	require.ErrorIs(t, err, ErrInvalidInput)

	top, err := svc.TopSelling(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, []domain.TopSellingRecord{{Name: "Tee", Sold: 9}}, top)
}

func TestMonthlySales_RejectsBadYear(t *testing.T) {
	svc := NewService(healthySource())
	_, err := svc.MonthlySales(context.Background(), 12)
	require.ErrorIs(t, err, ErrInvalidInput)
}
