package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

type EmployeeInput struct {
	Username string
	FullName string
	Email    string
	Roles    []string
}

// Service exposes employee use cases to adapters.
type Service interface {
	ListEmployees(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Employee], error)
	GetEmployee(ctx context.Context, id int64) (*domain.Employee, error)
	CreateEmployee(ctx context.Context, input EmployeeInput) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
}
