package ports

import (
	"context"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

// Source supplies raw reporting rows already scoped by the backend store.
type Source interface {
	StatusOverview(ctx context.Context) ([]domain.StatusOverviewRecord, error)
	SalesStatistic(ctx context.Context, year int) ([]domain.SalesRecord, error)
	// TopSelling returns products best seller first.
	TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error)
	Orders(ctx context.Context) ([]*orderdomain.Order, error)
	// TotalProducts counts the distinct products that appear on orders.
	TotalProducts(ctx context.Context) (int64, error)
}
