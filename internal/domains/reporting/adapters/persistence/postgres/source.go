package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

var _ ports.Source = (*Source)(nil)

// Querier is satisfied by *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Source runs the reporting aggregations as SQL over the orders schema.
type Source struct {
	db Querier
}

func NewSource(db Querier) *Source {
	return &Source{db: db}
}

func (s *Source) StatusOverview(ctx context.Context) ([]domain.StatusOverviewRecord, error) {
	const q = `
		SELECT status, COUNT(*)::numeric AS total
		FROM orders
		GROUP BY status
		ORDER BY status`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to query status overview: %w", err)
	}
	defer rows.Close()

	var records []domain.StatusOverviewRecord
	for rows.Next() {
		var r domain.StatusOverviewRecord
		if err := rows.Scan(&r.Status, &r.Total); err != nil {
			return nil, fmt.Errorf("failed to scan status overview row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("status overview row iteration error: %w", err)
	}
	return records, nil
}

// SalesStatistic sums delivered order value per payment method and month of creation.
func (s *Source) SalesStatistic(ctx context.Context, year int) ([]domain.SalesRecord, error) {
	const q = `
		SELECT payment_method,
		       EXTRACT(MONTH FROM created_date AT TIME ZONE 'UTC')::int AS month,
		       SUM(total_price) AS total
		FROM orders
		WHERE status = 'delivered'
		  AND EXTRACT(YEAR FROM created_date AT TIME ZONE 'UTC')::int = $1
		GROUP BY payment_method, month
		ORDER BY month, payment_method`

	rows, err := s.db.Query(ctx, q, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales statistic: %w", err)
	}
	defer rows.Close()

	var records []domain.SalesRecord
	for rows.Next() {
		var r domain.SalesRecord
		if err := rows.Scan(&r.Method, &r.Month, &r.Total); err != nil {
			return nil, fmt.Errorf("failed to scan sales row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sales row iteration error: %w", err)
	}
	return records, nil
}

// TopSelling ranks products by quantity over orders that were not cancelled or sent back.
func (s *Source) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	const q = `
		SELECT oi.product_name, SUM(oi.ordered_quantity)::bigint AS sold
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.status NOT IN ('cancel', 'refund', 'return')
		GROUP BY oi.product_name
		ORDER BY sold DESC, oi.product_name
		LIMIT $1`

	rows, err := s.db.Query(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top selling: %w", err)
	}
	defer rows.Close()

	var records []domain.TopSellingRecord
	for rows.Next() {
		var r domain.TopSellingRecord
		if err := rows.Scan(&r.Name, &r.Sold); err != nil {
			return nil, fmt.Errorf("failed to scan top selling row: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top selling row iteration error: %w", err)
	}
	return records, nil
}

// TotalProducts counts distinct product names across every order item.
func (s *Source) TotalProducts(ctx context.Context) (int64, error) {
	const q = `
		SELECT COUNT(DISTINCT btrim(product_name))
		FROM order_items
		WHERE btrim(product_name) <> ''`

	var total int64
	if err := s.db.QueryRow(ctx, q).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

// Orders loads every order with its items, newest first.
func (s *Source) Orders(ctx context.Context) ([]*orderdomain.Order, error) {
	const ordersQ = `
		SELECT id, full_name, phone, address, payment_method, is_paid, paid_date,
		       status, shipping_cost, total_price, created_date
		FROM orders
		ORDER BY created_date DESC, id DESC`

	rows, err := s.db.Query(ctx, ordersQ)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	var orders []*orderdomain.Order
	byID := map[int64]*orderdomain.Order{}
	for rows.Next() {
		var (
			o        orderdomain.Order
			status   string
			paidDate *time.Time
		)
		if err := rows.Scan(&o.ID, &o.FullName, &o.Phone, &o.Address, &o.PaymentMethod, &o.IsPaid, &paidDate,
			&status, &o.ShippingCost, &o.TotalPrice, &o.CreatedDate); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		o.Status = orderdomain.Status(status)
		o.PaidDate = paidDate
		orders = append(orders, &o)
		byID[o.ID] = &o
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("order row iteration error: %w", err)
	}

	const itemsQ = `
		SELECT order_id, variant_id, product_name, ordered_quantity, ordered_price
		FROM order_items
		ORDER BY order_id, position`

	itemRows, err := s.db.Query(ctx, itemsQ)
	if err != nil {
		return nil, fmt.Errorf("failed to query order items: %w", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var (
			orderID int64
			item    orderdomain.OrderItem
			price   decimal.Decimal
		)
		if err := itemRows.Scan(&orderID, &item.VariantID, &item.ProductName, &item.OrderedQuantity, &price); err != nil {
			return nil, fmt.Errorf("failed to scan order item row: %w", err)
		}
		item.OrderedPrice = price
		if order, ok := byID[orderID]; ok {
			order.Items = append(order.Items, item)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("order item row iteration error: %w", err)
	}
	return orders, nil
}
