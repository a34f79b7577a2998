package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

// CategoryInput carries the editable category fields. A nil IsActive keeps the current flag.
type CategoryInput struct {
	Name        string
	Slug        string
	Description string
	IsActive    *bool
}

// Service exposes category use cases to adapters.
type Service interface {
	ListCategories(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Category], error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, input CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}
