package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

// Service exposes order back-office use cases to adapters.
type Service interface {
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Order], error)
	UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error)
}
