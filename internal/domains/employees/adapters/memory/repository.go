package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu        sync.RWMutex
	employees map[int64]*domain.Employee
	nextID    int64
}

func NewRepository() *Repository {
	return &Repository{employees: map[int64]*domain.Employee{}}
}

func clone(e *domain.Employee) *domain.Employee {
	out := *e
	out.Roles = append([]domain.Role(nil), e.Roles...)
	return &out
}

func (r *Repository) Save(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	if employee == nil {
		return nil, errors.New("employee is nil")
	}
	if err := employee.Validate(); err != nil {
		return nil, err
	}
	stored := clone(employee)
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, existing := range r.employees {
		if id != stored.ID && existing.Username == stored.Username {
			return nil, ports.ErrUsernameTaken
		}
	}
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
	} else if stored.ID > r.nextID {
		r.nextID = stored.ID
	}
	r.employees[stored.ID] = stored
	return clone(stored), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	employee, ok := r.employees[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return clone(employee), nil
}

func (r *Repository) List(_ context.Context, query pagination.Query) (pagination.Page[*domain.Employee], error) {
	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))
	r.mu.RLock()
	matched := make([]*domain.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(e.Username), keyword) &&
			!strings.Contains(strings.ToLower(e.FullName), keyword) {
			continue
		}
		matched = append(matched, clone(e))
	}
	r.mu.RUnlock()
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return pagination.Slice(matched, query), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.employees[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.employees, id)
	return nil
}
