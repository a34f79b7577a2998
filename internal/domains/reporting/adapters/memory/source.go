package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

var _ ports.Source = (*Source)(nil)

// Source derives reporting rows from an order repository, computing in Go what
// the Postgres source computes with GROUP BY.
type Source struct {
	orders orderports.Repository
}

func NewSource(orders orderports.Repository) *Source {
	return &Source{orders: orders}
}

func (s *Source) StatusOverview(ctx context.Context) ([]domain.StatusOverviewRecord, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[orderdomain.Status]int64{}
	var seen []orderdomain.Status
	for _, order := range orders {
		if _, ok := counts[order.Status]; !ok {
			seen = append(seen, order.Status)
		}
		counts[order.Status]++
	}
	records := make([]domain.StatusOverviewRecord, 0, len(seen))
	for _, status := range seen {
		records = append(records, domain.StatusOverviewRecord{Status: string(status), Total: decimal.NewFromInt(counts[status])})
	}
	return records, nil
}

// SalesStatistic sums delivered order value per payment method and month of creation.
func (s *Source) SalesStatistic(ctx context.Context, year int) ([]domain.SalesRecord, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	type key struct {
		method string
		month  int
	}
	totals := map[key]decimal.Decimal{}
	for _, order := range orders {
		created := order.CreatedDate.UTC()
		if order.Status != orderdomain.StatusDelivered || created.Year() != year {
			continue
		}
		k := key{method: order.PaymentMethod, month: int(created.Month())}
		totals[k] = totals[k].Add(order.TotalPrice)
	}
	records := make([]domain.SalesRecord, 0, len(totals))
	for k, total := range totals {
		records = append(records, domain.SalesRecord{Method: k.method, Month: k.month, Total: total})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Month != records[j].Month {
			return records[i].Month < records[j].Month
		}
		return records[i].Method < records[j].Method
	})
	return records, nil
}

// TopSelling ranks products by quantity over orders that were not cancelled or sent back.
func (s *Source) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return nil, err
	}
	sold := map[string]int64{}
	for _, order := range orders {
		if !countsAsSale(order.Status) {
			continue
		}
		for _, item := range order.Items {
			sold[item.ProductName] += int64(item.OrderedQuantity)
		}
	}
	records := make([]domain.TopSellingRecord, 0, len(sold))
	for name, qty := range sold {
		records = append(records, domain.TopSellingRecord{Name: name, Sold: qty})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Sold != records[j].Sold {
			return records[i].Sold > records[j].Sold
		}
		return records[i].Name < records[j].Name
	})
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (s *Source) Orders(ctx context.Context) ([]*orderdomain.Order, error) {
	return s.orders.All(ctx)
}

// TotalProducts counts distinct product names across every order, whatever its status.
func (s *Source) TotalProducts(ctx context.Context) (int64, error) {
	orders, err := s.orders.All(ctx)
	if err != nil {
		return 0, err
	}
	names := map[string]struct{}{}
	for _, order := range orders {
		for _, item := range order.Items {
			if name := strings.TrimSpace(item.ProductName); name != "" {
				names[name] = struct{}{}
			}
		}
	}
	return int64(len(names)), nil
}

func countsAsSale(status orderdomain.Status) bool {
	switch status {
	case orderdomain.StatusCancel, orderdomain.StatusRefund, orderdomain.StatusReturn:
		return false
	}
	return true
}
