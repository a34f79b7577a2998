package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

// StatusBar is one histogram entry. Total is a decimal string, as the console expects.
type StatusBar struct {
	OrderStatus string          `json:"orderStatus"`
	Label       string          `json:"label"`
	Colour      string          `json:"colour"`
	Total       decimal.Decimal `json:"total"`
}

// SalesSeries is one payment method's twelve monthly totals, January first.
type SalesSeries struct {
	Method string            `json:"method"`
	Data   []decimal.Decimal `json:"data"`
}

type TopSelling struct {
	Name string `json:"name"`
	Sold int64  `json:"sold"`
}

type TotalRevenue struct {
	TotalRevenue decimal.Decimal `json:"totalRevenue"`
}

type Summary struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int64           `json:"totalOrders"`
	TotalPaidOrders int64           `json:"totalPaidOrders"`
}

type Dashboard struct {
	Year       int           `json:"year"`
	Overview   []StatusBar   `json:"overview"`
	Sales      []SalesSeries `json:"sales"`
	TopSelling []TopSelling  `json:"topSelling"`
	Summary    Summary       `json:"summary"`
	// TotalProducts sits beside the summary as the third headline counter.
	TotalProducts int64 `json:"totalProducts"`
}

func FromHistogram(histogram []domain.StatusTotal) []StatusBar {
	out := make([]StatusBar, 0, len(histogram))
	for _, bar := range histogram {
		out = append(out, StatusBar{
			OrderStatus: string(bar.Status),
			Label:       bar.Status.Label(),
			Colour:      string(bar.Status.Colour()),
			Total:       bar.Total,
		})
	}
	return out
}

// FromMonthlySeries keeps the methods in the order the source first reported them.
func FromMonthlySeries(series *domain.MonthlySeries) []SalesSeries {
	if series == nil {
		return []SalesSeries{}
	}
	out := make([]SalesSeries, 0, series.Len())
	for _, method := range series.Methods {
		months, _ := series.Series(method)
		out = append(out, SalesSeries{Method: method, Data: append([]decimal.Decimal(nil), months[:]...)})
	}
	return out
}

func FromTopSelling(records []domain.TopSellingRecord) []TopSelling {
	out := make([]TopSelling, 0, len(records))
	for _, r := range records {
		out = append(out, TopSelling{Name: r.Name, Sold: r.Sold})
	}
	return out
}

func FromSummary(s domain.RevenueSummary) Summary {
	return Summary{TotalRevenue: s.TotalRevenue, TotalOrders: s.TotalOrders, TotalPaidOrders: s.TotalPaidOrders}
}

func FromDashboard(d *domain.Dashboard) Dashboard {
	if d == nil {
		return Dashboard{}
	}
	return Dashboard{
		Year:       d.Year,
		Overview:   FromHistogram(d.Histogram),
		Sales:      FromMonthlySeries(d.Sales),
		TopSelling: FromTopSelling(d.TopSelling),
		Summary:    FromSummary(d.Summary),

		TotalProducts: d.TotalProducts,
	}
}
