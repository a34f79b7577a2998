package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func newOrder(id int64, name string, created time.Time) *domain.Order {
	return &domain.Order{
		ID:            id,
		FullName:      name,
		PaymentMethod: domain.MethodCOD,
		Status:        domain.StatusProcessing,
		TotalPrice:    decimal.NewFromInt(10),
		CreatedDate:   created,
		Items:         []domain.OrderItem{{VariantID: 1, OrderedQuantity: 1, OrderedPrice: decimal.NewFromInt(10)}},
	}
}

func TestRepository_SaveAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder(0, "Ann", time.Now()))
	require.NoError(t, err)
	require.Equal(t, int64(1), saved.ID)

	saved.Items[0].OrderedQuantity = 42
	fetched, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int32(1), fetched.Items[0].OrderedQuantity)

	_, err = repo.GetByID(ctx, 99)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_SaveRejectsInvalid(t *testing.T) {
	repo := NewRepository()
	order := newOrder(1, "Ann", time.Now())
	order.Status = "unknown"
	_, err := repo.Save(context.Background(), order)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestRepository_ListNewestFirstWithKeyword(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ann Lee", "Bob Stone", "Annie Hall"} {
		_, err := repo.Save(ctx, newOrder(int64(i+1), name, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, pagination.Query{Limit: 2, Page: 1})
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	require.Equal(t, []int64{3, 2}, []int64{page.Items[0].ID, page.Items[1].ID})

	page, err = repo.List(ctx, pagination.Query{Keyword: "ann"})
	require.NoError(t, err)
	require.Equal(t, int64(2), page.Total)
	require.Equal(t, int64(3), page.Items[0].ID)
}
