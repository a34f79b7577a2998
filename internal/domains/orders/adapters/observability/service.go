package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

const tracerName = "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/observability/service"

// Service decorates the orders service with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
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

// New wraps the core orders service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics: newServiceMetrics(nil),
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

func (s *Service) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetOrder", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetOrder(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	span.SetAttributes(attribute.String("order.status", string(result.Status)))
	return result, nil
}

func (s *Service) ListOrders(ctx context.Context, query pagination.Query) (pagination.Page[*domain.Order], error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListOrders",
		trace.WithAttributes(attribute.Int("page", query.Page), attribute.Int("limit", query.Limit)))
	defer span.End()

	page, err := s.inner.ListOrders(ctx, query)
	if err != nil {
		return page, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int64("orders.total", page.Total), attribute.Int("orders.returned", len(page.Items)))
	return page, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.UpdateStatus",
		trace.WithAttributes(attribute.Int64("order.id", id), attribute.String("order.target_status", string(target))))
	defer span.End()

	s.logInfo(ctx, "updating order status", slog.Int64("order.id", id), slog.String("target", string(target)))
	result, err := s.inner.UpdateStatus(ctx, id, target)
	if err != nil {
		s.metrics.recordFailure(ctx, target)
		return nil, s.handleError(ctx, span, err, "failed to update order status",
			slog.Int64("order.id", id), slog.String("target", string(target)))
	}
	s.metrics.recordTransition(ctx, result.Status, result.PaymentMethod)
	s.logInfo(ctx, "order status updated",
		slog.Int64("order.id", result.ID),
		slog.String("status", string(result.Status)),
		slog.Bool("paid", result.IsPaid))
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	transitions metric.Int64Counter
	failures    metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	transitions, _ := m.Int64Counter("orders.service.status_transitions", metric.WithDescription("Number of persisted order status transitions"))
	failures, _ := m.Int64Counter("orders.service.status_failures", metric.WithDescription("Number of rejected or failed status updates"))
	return serviceMetrics{transitions: transitions, failures: failures}
}

func (m serviceMetrics) recordTransition(ctx context.Context, status domain.Status, method string) {
	if m.transitions != nil {
		m.transitions.Add(ctx, 1, metric.WithAttributes(
			attribute.String("order.status", string(status)),
			attribute.Bool("order.cod", domain.IsCOD(method)),
		))
	}
}

func (m serviceMetrics) recordFailure(ctx context.Context, target domain.Status) {
	if m.failures != nil {
		m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("order.target_status", string(target))))
	}
}

var _ ports.Service = (*Service)(nil)
