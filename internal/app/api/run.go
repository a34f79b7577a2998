package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	backofficeserver "github.com/Apurer/go-gin-backoffice/go"
	orderworkflows "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/workflows"
	orderports "github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	"github.com/Apurer/go-gin-backoffice/internal/platform/metrics"
	platformobservability "github.com/Apurer/go-gin-backoffice/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-backoffice/internal/platform/temporal"
)

const serviceName = "backoffice-api"

// Run boots the back-office HTTP API and blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: cfg.OTLPEndpoint,
		OTLPInsecure: cfg.OTLPInsecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	infra := OpenInfrastructure(ctx, cfg, logger)
	defer infra.Close()

	orderRepo := infra.OrderRepository()
	orderService := infra.OrderService(cfg, orderRepo, instruments)
	reportService, err := infra.ReportingService(ctx, cfg, orderRepo, instruments)
	if err != nil {
		return err
	}

	var orderWorkflows orderports.WorkflowOrchestrator = orderworkflows.NewInlineOrderWorkflows(orderService)
	temporalClient, err := platformtemporal.Dial(platformtemporal.Config{
		Address:   cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Disabled:  cfg.TemporalDisabled,
	}, instruments.Tracer("temporal-client"), logger)
	if err != nil {
		logger.Warn("Temporal workflows unavailable, running status changes inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = orderworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	registry := prometheus.NewRegistry()
	serverMetrics := metrics.NewServerMetrics(serviceName, registry)

	handlers := backofficeserver.ApiHandleFunctions{
		OrderAPI:    backofficeserver.NewOrderAPI(orderService, orderWorkflows, reportService),
		ProductAPI:  backofficeserver.NewProductAPI(reportService),
		CategoryAPI: backofficeserver.NewCategoryAPI(infra.CategoryService()),
		EmployeeAPI: backofficeserver.NewEmployeeAPI(infra.EmployeeService()),
	}
	router := backofficeserver.NewRouter(handlers, otelgin.Middleware(serviceName), serverMetrics.Middleware())
	router.GET("/metrics", gin.WrapH(metrics.Handler(registry)))

	return serve(ctx, &http.Server{Addr: cfg.Addr(), Handler: router, ReadHeaderTimeout: 10 * time.Second}, logger)
}

func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("back-office API listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("back-office API server exited", slog.String("addr", srv.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info("shutting down back-office API")
	return srv.Shutdown(shutdownCtx)
}
