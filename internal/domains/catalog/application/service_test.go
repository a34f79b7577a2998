package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	catalogmemory "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/adapters/memory"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func TestCreateCategory(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	created, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: " Shoes ", Slug: "shoes"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.Equal(t, "Shoes", created.Name)
	require.True(t, created.IsActive)
	require.False(t, created.CreatedAt.IsZero())

	_, err = svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "Other shoes", Slug: "shoes"})
	require.ErrorIs(t, err, ErrSlugTaken)
}

func TestCreateCategory_RejectsInvalidInput(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())

	_, err := svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "", Slug: "shoes"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrEmptyName)

	_, err = svc.CreateCategory(context.Background(), ports.CategoryInput{Name: "Shoes", Slug: "Shoes!"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidSlug)
}

func TestUpdateCategory(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())
	ctx := context.Background()
	shoes, err := svc.CreateCategory(ctx, ports.CategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)
	hats, err := svc.CreateCategory(ctx, ports.CategoryInput{Name: "Hats", Slug: "hats"})
	require.NoError(t, err)

	hidden := false
	updated, err := svc.UpdateCategory(ctx, shoes.ID, ports.CategoryInput{Name: "Sneakers", Slug: "sneakers", IsActive: &hidden})
	require.NoError(t, err)
	require.Equal(t, "sneakers", updated.Slug)
	require.False(t, updated.IsActive)

	// Keeping its own slug is not a conflict.
	_, err = svc.UpdateCategory(ctx, hats.ID, ports.CategoryInput{Name: "Caps", Slug: "hats"})
	require.NoError(t, err)

	_, err = svc.UpdateCategory(ctx, hats.ID, ports.CategoryInput{Name: "Caps", Slug: "sneakers"})
	require.ErrorIs(t, err, ErrSlugTaken)

	_, err = svc.UpdateCategory(ctx, 999, ports.CategoryInput{Name: "X", Slug: "x"})
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteAndList(t *testing.T) {
	svc := NewService(catalogmemory.NewRepository())
	ctx := context.Background()
	for _, slug := range []string{"a", "b", "c"} {
		_, err := svc.CreateCategory(ctx, ports.CategoryInput{Name: slug, Slug: slug})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteCategory(ctx, 2))
	require.ErrorIs(t, svc.DeleteCategory(ctx, 2), ErrCategoryNotFound)

	page, err := svc.ListCategories(ctx, pagination.Query{Limit: 10})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, "a", page.Items[0].Slug)
	require.Equal(t, "c", page.Items[1].Slug)

	// The freed slug can be reused.
	_, err = svc.CreateCategory(ctx, ports.CategoryInput{Name: "B again", Slug: "b"})
	require.NoError(t, err)
}

// staleSlugRepo answers slug lookups as if a concurrent writer had not yet committed.
type staleSlugRepo struct {
	*catalogmemory.Repository
}

func (staleSlugRepo) GetBySlug(context.Context, string) (*domain.Category, error) {
	return nil, ports.ErrNotFound
}

func TestCreateCategory_ConcurrentSlugClaimIsConflict(t *testing.T) {
	repo := catalogmemory.NewRepository()
	ctx := context.Background()
	_, err := NewService(repo).CreateCategory(ctx, ports.CategoryInput{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)

	svc := NewService(staleSlugRepo{repo})
	_, err = svc.CreateCategory(ctx, ports.CategoryInput{Name: "Other shoes", Slug: "shoes"})
	require.ErrorIs(t, err, ErrSlugTaken)

	hats, err := svc.CreateCategory(ctx, ports.CategoryInput{Name: "Hats", Slug: "hats"})
	require.NoError(t, err)
	_, err = svc.UpdateCategory(ctx, hats.ID, ports.CategoryInput{Name: "Hats", Slug: "shoes"})
	require.ErrorIs(t, err, ErrSlugTaken)
}
