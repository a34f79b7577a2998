package remote

import (
	"context"
	"fmt"

	"github.com/Apurer/go-gin-backoffice/internal/clients/http/backend"
	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

const orderPageSize = 100

var _ ports.Source = (*Source)(nil)

// Backend is the subset of the upstream admin API used for reporting.
type Backend interface {
	StatusOverview(ctx context.Context) ([]backend.StatusOverview, error)
	SalesStatistic(ctx context.Context, year int) ([]backend.SalesStatistic, error)
	TopSelling(ctx context.Context, limit int) ([]backend.TopSelling, error)
	ListOrders(ctx context.Context, page, limit int) (*backend.OrderPage, error)
	TotalProduct(ctx context.Context) (int64, error)
}

// Source reads reporting rows from an upstream admin API.
type Source struct {
	api Backend
}

func NewSource(api Backend) *Source {
	return &Source{api: api}
}

func (s *Source) StatusOverview(ctx context.Context) ([]domain.StatusOverviewRecord, error) {
	rows, err := s.api.StatusOverview(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.StatusOverviewRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.StatusOverviewRecord{Status: row.OrderStatus, Total: row.Total})
	}
	return out, nil
}

func (s *Source) SalesStatistic(ctx context.Context, year int) ([]domain.SalesRecord, error) {
	rows, err := s.api.SalesStatistic(ctx, year)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SalesRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.SalesRecord{Method: row.Method, Month: row.Month, Total: row.Total})
	}
	return out, nil
}

func (s *Source) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	rows, err := s.api.TopSelling(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]domain.TopSellingRecord, 0, len(rows))
	for _, row := range rows {
		sold, err := row.Sold.Int64()
		if err != nil {
			return nil, fmt.Errorf("%w: %q sold %q", domain.ErrInvalidSalesCount, row.Name, row.Sold)
		}
		out = append(out, domain.TopSellingRecord{Name: row.Name, Sold: sold})
	}
	return out, nil
}

func (s *Source) TotalProducts(ctx context.Context) (int64, error) {
	return s.api.TotalProduct(ctx)
}

// Orders walks every page of the upstream order list.
func (s *Source) Orders(ctx context.Context) ([]*orderdomain.Order, error) {
	var orders []*orderdomain.Order
	for page := 1; ; page++ {
		result, err := s.api.ListOrders(ctx, page, orderPageSize)
		if err != nil {
			return nil, err
		}
		for _, dto := range result.Data {
			orders = append(orders, toDomainOrder(dto))
		}
		if len(result.Data) == 0 || int64(len(orders)) >= result.Total {
			return orders, nil
		}
	}
}

func toDomainOrder(dto backend.Order) *orderdomain.Order {
	order := &orderdomain.Order{
		ID:            dto.ID,
		FullName:      dto.FullName,
		Phone:         dto.Phone,
		Address:       dto.Address,
		PaymentMethod: dto.PaymentMethod,
		IsPaid:        dto.IsPaid,
		PaidDate:      dto.PaidDate,
		Status:        orderdomain.Status(dto.OrderStatus),
		ShippingCost:  dto.ShippingCost,
		TotalPrice:    dto.TotalPrice,
		CreatedDate:   dto.CreatedDate,
	}
	for _, item := range dto.OrderItems {
		order.Items = append(order.Items, orderdomain.OrderItem{
			VariantID:       item.VariantID,
			ProductName:     item.ProductName,
			OrderedQuantity: item.OrderedQuantity,
			OrderedPrice:    item.OrderedPrice,
		})
	}
	return order
}
