package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

var _ ports.Repository = (*Repository)(nil)

// Repository keeps categories in memory, indexed by id and slug.
type Repository struct {
	mu         sync.RWMutex
	categories map[int64]domain.Category
	slugs      map[string]int64
	nextID     int64
}

func NewRepository() *Repository {
	return &Repository{categories: map[int64]domain.Category{}, slugs: map[string]int64{}}
}

func (r *Repository) Save(_ context.Context, category *domain.Category) (*domain.Category, error) {
	if category == nil {
		return nil, errors.New("category is nil")
	}
	clone := *category
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if owner, ok := r.slugs[clone.Slug]; ok && owner != clone.ID {
		return nil, ports.ErrSlugTaken
	}
	if clone.ID == 0 {
		r.nextID++
		clone.ID = r.nextID
	} else if clone.ID > r.nextID {
		r.nextID = clone.ID
	}
	if previous, ok := r.categories[clone.ID]; ok && previous.Slug != clone.Slug {
		delete(r.slugs, previous.Slug)
	}
	r.categories[clone.ID] = clone
	r.slugs[clone.Slug] = clone.ID
	out := clone
	return &out, nil
}

func (r *Repository) GetByID(_ context.Context, id int64) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &category, nil
}

func (r *Repository) GetBySlug(_ context.Context, slug string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.slugs[strings.TrimSpace(slug)]
	if !ok {
		return nil, ports.ErrNotFound
	}
	category := r.categories[id]
	return &category, nil
}

// List matches the keyword against name and slug, ordered by id.
func (r *Repository) List(_ context.Context, query pagination.Query) (pagination.Page[*domain.Category], error) {
	keyword := strings.ToLower(strings.TrimSpace(query.Keyword))
	r.mu.RLock()
	matched := make([]*domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		if keyword != "" &&
			!strings.Contains(strings.ToLower(category.Name), keyword) &&
			!strings.Contains(category.Slug, keyword) {
			continue
		}
		c := category
		matched = append(matched, &c)
	}
	r.mu.RUnlock()
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return pagination.Slice(matched, query), nil
}

func (r *Repository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category, ok := r.categories[id]
	if !ok {
		return ports.ErrNotFound
	}
	delete(r.categories, id)
	delete(r.slugs, category.Slug)
	return nil
}
