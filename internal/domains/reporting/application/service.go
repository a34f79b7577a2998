package application

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

const (
	DefaultTopSellingLimit = 5
	MaxTopSellingLimit     = 50
)

// Service fetches raw rows from the source and reduces them into dashboard views.
type Service struct {
	source ports.Source
	now    func() time.Time
}

type Option func(*Service)

// WithClock sets the clock used to default the reporting year.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(source ports.Source, opts ...Option) *Service {
	s := &Service{source: source, now: time.Now}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) StatusHistogram(ctx context.Context) ([]domain.StatusTotal, error) {
	records, err := s.source.StatusOverview(ctx)
	if err != nil {
		return nil, sourceError("status overview", err)
	}
	histogram, err := domain.BuildStatusHistogram(records)
	if err != nil {
		return nil, mapAggregateError(err)
	}
	return histogram, nil
}

// MonthlySales builds the per-method series for year; zero means the current year.
func (s *Service) MonthlySales(ctx context.Context, year int) (*domain.MonthlySeries, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}
	records, err := s.source.SalesStatistic(ctx, year)
	if err != nil {
		return nil, sourceError("sales statistic", err)
	}
	series, err := domain.BuildMonthlySeries(records)
	if err != nil {
		return nil, mapAggregateError(err)
	}
	return series, nil
}

func (s *Service) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	limit, err := resolveLimit(limit)
	if err != nil {
		return nil, err
	}
	records, err := s.source.TopSelling(ctx, limit)
	if err != nil {
		return nil, sourceError("top selling", err)
	}
	if len(records) > limit {
		records = records[:limit]
	}
	ranked, err := domain.NormalizeTopSelling(records)
	if err != nil {
		return nil, mapAggregateError(err)
	}
	return ranked, nil
}

func (s *Service) RevenueSummary(ctx context.Context) (domain.RevenueSummary, error) {
	orders, err := s.source.Orders(ctx)
	if err != nil {
		return domain.RevenueSummary{}, sourceError("orders", err)
	}
	summary, err := domain.Summarize(orders)
	if err != nil {
		return domain.RevenueSummary{}, mapAggregateError(err)
	}
	return summary, nil
}

func (s *Service) TotalProducts(ctx context.Context) (int64, error) {
	total, err := s.source.TotalProducts(ctx)
	if err != nil {
		return 0, sourceError("total products", err)
	}
	if total < 0 {
		return 0, mapAggregateError(fmt.Errorf("%w: %d", domain.ErrInvalidProductCount, total))
	}
	return total, nil
}

// Dashboard computes every aggregate concurrently; the first failure cancels the rest.
func (s *Service) Dashboard(ctx context.Context, year, limit int) (*domain.Dashboard, error) {
	year, err := s.resolveYear(year)
	if err != nil {
		return nil, err
	}
	if _, err := resolveLimit(limit); err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{Year: year}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		histogram, err := s.StatusHistogram(gctx)
		dashboard.Histogram = histogram
		return err
	})
	g.Go(func() error {
		sales, err := s.MonthlySales(gctx, year)
		dashboard.Sales = sales
		return err
	})
	g.Go(func() error {
		top, err := s.TopSelling(gctx, limit)
		dashboard.TopSelling = top
		return err
	})
	g.Go(func() error {
		summary, err := s.RevenueSummary(gctx)
		dashboard.Summary = summary
		return err
	})
	g.Go(func() error {
		total, err := s.TotalProducts(gctx)
		dashboard.TotalProducts = total
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (s *Service) resolveYear(year int) (int, error) {
	if year == 0 {
		return s.now().Year(), nil
	}
	if year < 1970 || year > 9999 {
		return 0, fmt.Errorf("%w: year %d", ErrInvalidInput, year)
	}
	return year, nil
}

func resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultTopSellingLimit, nil
	case limit < 0 || limit > MaxTopSellingLimit:
		return 0, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxTopSellingLimit)
	}
	return limit, nil
}

var _ ports.Service = (*Service)(nil)
