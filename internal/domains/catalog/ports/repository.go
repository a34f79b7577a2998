package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var (
	ErrNotFound  = errors.New("category not found")
	ErrSlugTaken = errors.New("category slug already in use")
)

// Repository persists categories. Save assigns an ID to new categories and
// returns ErrSlugTaken when another category owns the slug.
type Repository interface {
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Category], error)
	Delete(ctx context.Context, id int64) error
}
