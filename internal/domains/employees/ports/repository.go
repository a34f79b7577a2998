package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var (
	ErrNotFound      = errors.New("employee not found")
	ErrUsernameTaken = errors.New("username already in use")
)

// Repository persists employees. List matches Query.Keyword against username and full name.
type Repository interface {
	Save(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Employee], error)
	Delete(ctx context.Context, id int64) error
}
