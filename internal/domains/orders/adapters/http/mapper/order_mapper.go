package mapper

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

// OrderItem is the transport shape of a line item.
type OrderItem struct {
	VariantID       int64           `json:"variantId"`
	ProductName     string          `json:"productName"`
	OrderedQuantity int32           `json:"orderedQuantity"`
	OrderedPrice    decimal.Decimal `json:"orderedPrice"`
}

// Order is the transport shape consumed by the admin console.
type Order struct {
	ID            int64           `json:"id"`
	FullName      string          `json:"fullName"`
	Phone         string          `json:"phone"`
	Address       string          `json:"address"`
	PaymentMethod string          `json:"paymentMethod"`
	IsPaid        bool            `json:"isPaid"`
	PaidDate      *time.Time      `json:"paidDate"`
	OrderStatus   string          `json:"orderStatus"`
	StatusLabel   string          `json:"statusLabel"`
	StatusColour  string          `json:"statusColour"`
	ShippingCost  decimal.Decimal `json:"shippingCost"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	ItemCount     int64           `json:"itemCount"`
	ItemsTotal    decimal.Decimal `json:"itemsTotal"`
	CreatedDate   time.Time       `json:"createdDate"`
	OrderItems    []OrderItem     `json:"orderItems"`
}

// OrderPage wraps a page of orders with paging metadata.
type OrderPage struct {
	Data  []Order `json:"data"`
	Total int64   `json:"total"`
	Page  int     `json:"page"`
	Limit int     `json:"limit"`
}

// UpdateStatusRequest is the PATCH body of the status endpoint.
type UpdateStatusRequest struct {
	OrderStatus string `json:"orderStatus" binding:"required"`
}

// FromDomainOrder converts a domain order to the transport representation.
// Items with a negative quantity or price make the derived totals undefined and fail the conversion.
func FromDomainOrder(order *domain.Order) (Order, error) {
	if order == nil {
		return Order{}, nil
	}
	out := Order{
		ID:            order.ID,
		FullName:      order.FullName,
		Phone:         order.Phone,
		Address:       order.Address,
		PaymentMethod: order.PaymentMethod,
		IsPaid:        order.IsPaid,
		PaidDate:      order.PaidDate,
		OrderStatus:   string(order.Status),
		StatusLabel:   order.Status.Label(),
		StatusColour:  string(order.Status.Colour()),
		ShippingCost:  order.ShippingCost,
		TotalPrice:    order.TotalPrice,
		CreatedDate:   order.CreatedDate,
		OrderItems:    make([]OrderItem, 0, len(order.Items)),
	}
	count, err := order.ItemCount()
	if err != nil {
		return Order{}, fmt.Errorf("order %d item count: %w", order.ID, err)
	}
	total, err := order.ItemsTotal()
	if err != nil {
		return Order{}, fmt.Errorf("order %d items total: %w", order.ID, err)
	}
	out.ItemCount = count
	out.ItemsTotal = total
	for _, item := range order.Items {
		out.OrderItems = append(out.OrderItems, OrderItem{
			VariantID:       item.VariantID,
			ProductName:     item.ProductName,
			OrderedQuantity: item.OrderedQuantity,
			OrderedPrice:    item.OrderedPrice,
		})
	}
	return out, nil
}

func FromDomainPage(page pagination.Page[*domain.Order]) (OrderPage, error) {
	var firstErr error
	mapped := pagination.Map(page, func(order *domain.Order) Order {
		out, err := FromDomainOrder(order)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		return out
	})
	if firstErr != nil {
		return OrderPage{}, firstErr
	}
	return OrderPage{Data: mapped.Items, Total: mapped.Total, Page: mapped.Page, Limit: mapped.Limit}, nil
}
