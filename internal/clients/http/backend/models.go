package backend

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// StatusOverview is one row of GET /admin/order/overview. Totals arrive as strings or numbers.
type StatusOverview struct {
	OrderStatus string          `json:"orderStatus"`
	Total       decimal.Decimal `json:"total"`
}

// SalesStatistic is one row of GET /admin/order/sales-statistic.
type SalesStatistic struct {
	Method string          `json:"method"`
	Month  int             `json:"month"`
	Total  decimal.Decimal `json:"total"`
}

// TopSelling is one row of GET /admin/product/top-selling.
type TopSelling struct {
	Name string      `json:"name"`
	Sold json.Number `json:"sold"`
}

type OrderItem struct {
	VariantID       int64           `json:"variantId"`
	ProductName     string          `json:"productName"`
	OrderedQuantity int32           `json:"orderedQuantity"`
	OrderedPrice    decimal.Decimal `json:"orderedPrice"`
}

type Order struct {
	ID            int64           `json:"id"`
	FullName      string          `json:"fullName"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	IsPaid        bool            `json:"isPaid"`
	PaidDate      *time.Time      `json:"paidDate"`
	OrderStatus   string          `json:"orderStatus"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	CreatedDate   time.Time       `json:"createdDate"`
	OrderItems    []OrderItem     `json:"orderItems"`
}

// OrderPage is the paginated envelope of GET /admin/order.
type OrderPage struct {
	Data  []Order `json:"data"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}
