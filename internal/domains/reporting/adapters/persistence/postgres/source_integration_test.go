//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	orderpg "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/persistence/postgres"
	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/platform/migrations"
)

func setupReportingDatabase(t *testing.T) (*gorm.DB, *pgxpool.Pool, func()) {
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, migrations.Run(db))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		pool.Close()
		if sqlDB, _ := db.DB(); sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}
	return db, pool, cleanup
}

func seed(t *testing.T, repo *orderpg.Repository, method string, status orderdomain.Status, total string, created time.Time, items ...orderdomain.OrderItem) {
	t.Helper()
	_, err := repo.Save(context.Background(), &orderdomain.Order{
		FullName:      "Jane Roe",
		PaymentMethod: method,
		Status:        status,
		TotalPrice:    decimal.RequireFromString(total),
		CreatedDate:   created,
		Items:         items,
	})
	require.NoError(t, err)
}

func TestSource_Aggregations(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db, pool, cleanup := setupReportingDatabase(t)
	defer cleanup()

	repo := orderpg.NewRepository(db)
	tee := func(qty int32) orderdomain.OrderItem {
		return orderdomain.OrderItem{VariantID: 1, ProductName: "Tee", OrderedQuantity: qty, OrderedPrice: decimal.RequireFromString("10.00")}
	}
	hat := func(qty int32) orderdomain.OrderItem {
		return orderdomain.OrderItem{VariantID: 2, ProductName: "Cap", OrderedQuantity: qty, OrderedPrice: decimal.RequireFromString("5.00")}
	}

	march := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	seed(t, repo, "COD", orderdomain.StatusDelivered, "20.00", march, tee(2))
	seed(t, repo, "COD", orderdomain.StatusDelivered, "15.50", march.Add(time.Hour), hat(3))
	seed(t, repo, "VISA", orderdomain.StatusDelivered, "10.00", march.AddDate(0, 2, 0), tee(1))
	seed(t, repo, "VISA", orderdomain.StatusCancel, "99.00", march, hat(40))
	seed(t, repo, "COD", orderdomain.StatusDelivered, "7.00", march.AddDate(-1, 0, 0), tee(1))

	src := NewSource(pool)
	ctx := context.Background()

	overview, err := src.StatusOverview(ctx)
	require.NoError(t, err)
	counts := map[string]string{}
	for _, r := range overview {
		counts[r.Status] = r.Total.String()
	}
	assert.Equal(t, map[string]string{"cancel": "1", "delivered": "4"}, counts)

	sales, err := src.SalesStatistic(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "COD", sales[0].Method)
	assert.Equal(t, 3, sales[0].Month)
	assert.True(t, decimal.RequireFromString("35.50").Equal(sales[0].Total), sales[0].Total.String())
	assert.Equal(t, "VISA", sales[1].Method)
	assert.Equal(t, 5, sales[1].Month)

	top, err := src.TopSelling(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Tee", top[0].Name)
	assert.Equal(t, int64(4), top[0].Sold)
	assert.Equal(t, "Cap", top[1].Name)
	assert.Equal(t, int64(3), top[1].Sold)

	products, err := src.TotalProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), products)

	orders, err := src.Orders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for _, o := range orders {
		assert.Len(t, o.Items, 1)
	}
}
