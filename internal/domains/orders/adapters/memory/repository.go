package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[int64]*domain.Order
	nextID int64
}

func NewRepository() *Repository {
	return &Repository{orders: map[int64]*domain.Order{}}
}

func (r *Repository) Save(_ context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := order.Clone()
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	r.orders[clone.ID] = clone
	return clone.Clone(), nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return order.Clone(), nil
}

// List filters by customer name and returns the newest orders first.
func (r *Repository) List(_ context.Context, query pagination.Query) (pagination.Page[*domain.Order], error) {
	r.mu.RLock()
	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))
	matched := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if keyword != "" && !strings.Contains(strings.ToLower(order.FullName), keyword) {
			continue
		}
		matched = append(matched, order.Clone())
	}
	r.mu.RUnlock()
	sortNewestFirst(matched)
	return pagination.Slice(matched, query), nil
}

func (r *Repository) All(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, order.Clone())
	}
	sortNewestFirst(list)
	return list, nil
}

func sortNewestFirst(list []*domain.Order) {
	sort.Slice(list, func(i, j int) bool {
		if !list[i].CreatedDate.Equal(list[j].CreatedDate) {
			return list[i].CreatedDate.After(list[j].CreatedDate)
		}
		return list[i].ID > list[j].ID
	})
}
