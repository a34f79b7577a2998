//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/platform/migrations"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func setupOrdersPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("backoffice_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, cleanup
}

func newOrder(name string, created time.Time) *domain.Order {
	return &domain.Order{
		FullName:      name,
		Phone:         "555-0100",
		Address:       "1 Main St",
		PaymentMethod: domain.MethodCOD,
		Status:        domain.StatusProcessing,
		ShippingCost:  decimal.RequireFromString("3.50"),
		TotalPrice:    decimal.RequireFromString("43.48"),
		CreatedDate:   created.UTC().Truncate(time.Microsecond),
		Items: []domain.OrderItem{
			{VariantID: 11, ProductName: "Tee", OrderedQuantity: 2, OrderedPrice: decimal.RequireFromString("19.99")},
			{VariantID: 12, ProductName: "Sticker", OrderedQuantity: 1, OrderedPrice: decimal.RequireFromString("0.00")},
		},
	}
}

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder("Jane Roe", time.Now()))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)
	require.Len(t, saved.Items, 2)
	assert.Equal(t, "Tee", saved.Items[0].ProductName)

	total, err := saved.ItemsTotal()
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("39.98").Equal(total), total.String())

	_, err = repo.GetByID(ctx, saved.ID+100)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_SavePersistsTransition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, newOrder("Jane Roe", time.Now()))
	require.NoError(t, err)

	now := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	_, err = saved.ApplyTransition(domain.StatusDelivered, now)
	require.NoError(t, err)
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDelivered, updated.Status)
	assert.True(t, updated.IsPaid)
	require.NotNil(t, updated.PaidDate)
	assert.True(t, now.Equal(*updated.PaidDate))
	assert.Len(t, updated.Items, 2)
}

func TestRepository_ListNewestFirst(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, cleanup := setupOrdersPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, name := range []string{"Ann Lee", "Bob Stone", "Annie Hall"} {
		_, err := repo.Save(ctx, newOrder(name, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, pagination.Query{Limit: 2, Page: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Annie Hall", page.Items[0].FullName)
	assert.Equal(t, "Bob Stone", page.Items[1].FullName)

	filtered, err := repo.List(ctx, pagination.Query{Keyword: "ann"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), filtered.Total)

	all, err := repo.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
