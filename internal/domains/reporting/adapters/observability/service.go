package observability

import (
	"context"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

const tracerName = "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/observability/service"

// Service decorates the reporting service with spans, logs and request metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:  inner,
		tracer: nooptrace.NewTracerProvider().Tracer(tracerName),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) StatusHistogram(ctx context.Context) ([]domain.StatusTotal, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.StatusHistogram")
	defer span.End()
	defer s.metrics.observe(ctx, "status_histogram", time.Now())

	result, err := s.inner.StatusHistogram(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, "status_histogram", err)
	}
	return result, nil
}

func (s *Service) MonthlySales(ctx context.Context, year int) (*domain.MonthlySeries, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.MonthlySales", trace.WithAttributes(attribute.Int("report.year", year)))
	defer span.End()
	defer s.metrics.observe(ctx, "monthly_sales", time.Now())

	result, err := s.inner.MonthlySales(ctx, year)
	if err != nil {
		return nil, s.handleError(ctx, span, "monthly_sales", err, slog.Int("year", year))
	}
	span.SetAttributes(attribute.Int("report.methods", result.Len()))
	return result, nil
}

func (s *Service) TopSelling(ctx context.Context, limit int) ([]domain.TopSellingRecord, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.TopSelling", trace.WithAttributes(attribute.Int("report.limit", limit)))
	defer span.End()
	defer s.metrics.observe(ctx, "top_selling", time.Now())

	result, err := s.inner.TopSelling(ctx, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, "top_selling", err, slog.Int("limit", limit))
	}
	return result, nil
}

func (s *Service) RevenueSummary(ctx context.Context) (domain.RevenueSummary, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.RevenueSummary")
	defer span.End()
	defer s.metrics.observe(ctx, "revenue_summary", time.Now())

	result, err := s.inner.RevenueSummary(ctx)
	if err != nil {
		return result, s.handleError(ctx, span, "revenue_summary", err)
	}
	span.SetAttributes(attribute.Int64("report.orders", result.TotalOrders))
	return result, nil
}

func (s *Service) TotalProducts(ctx context.Context) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.TotalProducts")
	defer span.End()
	defer s.metrics.observe(ctx, "total_products", time.Now())

	total, err := s.inner.TotalProducts(ctx)
	if err != nil {
		return 0, s.handleError(ctx, span, "total_products", err)
	}
	span.SetAttributes(attribute.Int64("report.products", total))
	return total, nil
}

func (s *Service) Dashboard(ctx context.Context, year, limit int) (*domain.Dashboard, error) {
	ctx, span := s.tracer.Start(ctx, "ReportingService.Dashboard",
		trace.WithAttributes(attribute.Int("report.year", year), attribute.Int("report.limit", limit)))
	defer span.End()
	defer s.metrics.observe(ctx, "dashboard", time.Now())

	result, err := s.inner.Dashboard(ctx, year, limit)
	if err != nil {
		return nil, s.handleError(ctx, span, "dashboard", err, slog.Int("year", year), slog.Int("limit", limit))
	}
	s.logger.LogAttrs(ctx, slog.LevelDebug, "dashboard assembled",
		slog.Int("year", result.Year), slog.Int("top_selling", len(result.TopSelling)))
	return result, nil
}

func (s *Service) handleError(ctx context.Context, span trace.Span, op string, err error, attrs ...slog.Attr) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.recordFailure(ctx, op)
	attrs = append(attrs, slog.String("report", op), slog.String("error", err.Error()))
	s.logger.LogAttrs(ctx, slog.LevelError, "report failed", attrs...)
	return err
}

type serviceMetrics struct {
	requests metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	requests, _ := m.Int64Counter("reporting.service.requests", metric.WithDescription("Number of report requests"))
	failures, _ := m.Int64Counter("reporting.service.failures", metric.WithDescription("Number of failed report requests"))
	duration, _ := m.Float64Histogram("reporting.service.duration", metric.WithUnit("s"),
		metric.WithDescription("Report assembly latency"))
	return serviceMetrics{requests: requests, failures: failures, duration: duration}
}

func (m serviceMetrics) observe(ctx context.Context, op string, started time.Time) {
	attrs := metric.WithAttributes(attribute.String("report", op))
	if m.requests != nil {
		m.requests.Add(ctx, 1, attrs)
	}
	if m.duration != nil {
		m.duration.Record(ctx, time.Since(started).Seconds(), attrs)
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, op string) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("report", op)))
	}
}

var _ ports.Service = (*Service)(nil)
