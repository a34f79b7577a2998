package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

// Service exposes dashboard aggregates to adapters.
type Service interface {
	StatusHistogram(ctx context.Context) ([]domain.StatusTotal, error)
	MonthlySales(ctx context.Context, year int) (*domain.MonthlySeries, error)
	TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error)
	RevenueSummary(ctx context.Context) (domain.RevenueSummary, error)
	TotalProducts(ctx context.Context) (int64, error)
	Dashboard(ctx context.Context, year, limit int) (*domain.Dashboard, error)
}
