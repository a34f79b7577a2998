package application

import (
	"context"
	"time"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

// Service exposes employee management use cases.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ListEmployees pages through employees matching the keyword, newest first.
func (s *Service) ListEmployees(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Employee], error) {
	return s.repo.List(ctx, query.Normalize())
}

func (s *Service) GetEmployee(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateEmployee(ctx context.Context, input ports.EmployeeInput) (*domain.Employee, error) {
	employee, err := domain.NewEmployee(input.Username, input.FullName, input.Email, input.Roles)
	if err != nil {
		return nil, mapError(err)
	}
	employee.CreatedAt = s.now().UTC()
	saved, err := s.repo.Save(ctx, employee)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) DeleteEmployee(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

var _ ports.Service = (*Service)(nil)
