package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func TestRepository_SlugIndexFollowsRenames(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Category{Name: "Shoes", Slug: "shoes"})
	require.NoError(t, err)

	saved.Slug = "sneakers"
	_, err = repo.Save(ctx, saved)
	require.NoError(t, err)

	_, err = repo.GetBySlug(ctx, "shoes")
	require.ErrorIs(t, err, ports.ErrNotFound)
	found, err := repo.GetBySlug(ctx, "sneakers")
	require.NoError(t, err)
	require.Equal(t, saved.ID, found.ID)

	_, err = repo.Save(ctx, &domain.Category{Name: "Other", Slug: "sneakers"})
	require.ErrorIs(t, err, ports.ErrSlugTaken)
}

func TestRepository_ListFiltersByKeyword(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	for _, c := range []domain.Category{{Name: "Summer Sale", Slug: "summer"}, {Name: "Hats", Slug: "hats"}} {
		c := c
		_, err := repo.Save(ctx, &c)
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, pagination.Query{Keyword: "SUM"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, "summer", page.Items[0].Slug)

	_, err = repo.Save(ctx, &domain.Category{Name: " ", Slug: "blank"})
	require.ErrorIs(t, err, domain.ErrEmptyName)
}
