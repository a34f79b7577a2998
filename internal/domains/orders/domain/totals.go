package domain

import "github.com/shopspring/decimal"

// ItemCount sums the ordered quantities of the order lines.
func (o *Order) ItemCount() (int64, error) {
	var count int64
	for _, item := range o.Items {
		if item.OrderedQuantity < 0 {
			return 0, ErrInvalidQuantity
		}
		count += int64(item.OrderedQuantity)
	}
	return count, nil
}

// ItemsTotal is the merchandise subtotal: quantity times frozen price, shipping excluded.
func (o *Order) ItemsTotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return decimal.Zero, err
		}
		total = total.Add(item.OrderedPrice.Mul(decimal.NewFromInt32(item.OrderedQuantity)))
	}
	return total, nil
}

// TotalRevenue is the gross order value. Callers pre-filter orders for narrower definitions.
func TotalRevenue(orders []*Order) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, order := range orders {
		if order == nil {
			continue
		}
		if order.TotalPrice.IsNegative() {
			return decimal.Zero, ErrInvalidPrice
		}
		total = total.Add(order.TotalPrice)
	}
	return total, nil
}

// TotalPaidOrders counts orders flagged as paid.
func TotalPaidOrders(orders []*Order) int64 {
	var paid int64
	for _, order := range orders {
		if order != nil && order.IsPaid {
			paid++
		}
	}
	return paid
}
