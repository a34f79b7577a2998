package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

// Service orchestrates category maintenance.
type Service struct {
	repo ports.Repository
	now  func() time.Time
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListCategories(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Category], error) {
	return s.repo.List(ctx, query.Normalize())
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// CreateCategory rejects a slug that another category already owns.
func (s *Service) CreateCategory(ctx context.Context, input ports.CategoryInput) (*domain.Category, error) {
	category, err := domain.NewCategory(input.Name, input.Slug, input.Description)
	if err != nil {
		return nil, mapError(err)
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.ensureSlugFree(ctx, category.Slug, 0); err != nil {
		return nil, err
	}
	now := s.now().UTC()
	category.CreatedAt, category.UpdatedAt = now, now
	return s.repo.Save(ctx, category)
}

func (s *Service) UpdateCategory(ctx context.Context, id int64, input ports.CategoryInput) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := category.Rename(input.Name); err != nil {
		return nil, mapError(err)
	}
	if err := category.SetSlug(input.Slug); err != nil {
		return nil, mapError(err)
	}
	category.Description = strings.TrimSpace(input.Description)
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
	if err := s.ensureSlugFree(ctx, category.Slug, category.ID); err != nil {
		return nil, err
	}
	category.UpdatedAt = s.now().UTC()
	return s.repo.Save(ctx, category)
}

func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) ensureSlugFree(ctx context.Context, slug string, owner int64) error {
	existing, err := s.repo.GetBySlug(ctx, slug)
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != owner:
		return ErrSlugTaken
	}
	return nil
}

var _ ports.Service = (*Service)(nil)
