package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var ErrNotFound = errors.New("order not found")

// Repository is the external order store. Orders are created elsewhere; the
// back office only reads them and persists status/payment changes.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Order], error)
	All(ctx context.Context) ([]*domain.Order, error)
}
