package domain

import (
	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

// RevenueSummary holds the dashboard headline figures.
type RevenueSummary struct {
	TotalRevenue    decimal.Decimal
	TotalOrders     int64
	TotalPaidOrders int64
}

// Summarize reduces the orders in one pass per figure. Revenue is gross order value.
func Summarize(orders []*orderdomain.Order) (RevenueSummary, error) {
	revenue, err := orderdomain.TotalRevenue(orders)
	if err != nil {
		return RevenueSummary{}, err
	}
	var count int64
	for _, order := range orders {
		if order != nil {
			count++
		}
	}
	return RevenueSummary{
		TotalRevenue:    revenue,
		TotalOrders:     count,
		TotalPaidOrders: orderdomain.TotalPaidOrders(orders),
	}, nil
}

// Dashboard bundles every aggregate the overview page renders.
type Dashboard struct {
	Year       int
	Histogram  []StatusTotal
	Sales      *MonthlySeries
	TopSelling []TopSellingRecord
	Summary    RevenueSummary
	// TotalProducts is the distinct product count shown beside revenue and orders.
	TotalProducts int64
}
