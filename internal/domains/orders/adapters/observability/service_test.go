package observability

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	ordermemory "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/memory"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

func counterTotal(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestService_RecordsSpansAndCounters(t *testing.T) {
	repo := ordermemory.NewRepository()
	_, err := repo.Save(context.Background(), &domain.Order{
		ID:            1,
		FullName:      "Jane Roe",
		PaymentMethod: domain.MethodCOD,
		Status:        domain.StatusDelivering,
		TotalPrice:    decimal.RequireFromString("10.00"),
		CreatedDate:   time.Now(),
	})
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	svc := New(application.NewService(repo), WithTracer(tp.Tracer("test")), WithMeter(mp.Meter("test")))

	updated, err := svc.UpdateStatus(context.Background(), 1, domain.StatusDelivered)
	require.NoError(t, err)
	require.True(t, updated.IsPaid)

	_, err = svc.UpdateStatus(context.Background(), 99, domain.StatusCancel)
	require.ErrorIs(t, err, application.ErrOrderNotFound)

	spans := recorder.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "OrderService.UpdateStatus", spans[0].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)

	require.Equal(t, int64(1), counterTotal(t, reader, "orders.service.status_transitions"))
	require.Equal(t, int64(1), counterTotal(t, reader, "orders.service.status_failures"))
}
