package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-backoffice/internal/app/api"
	orderactivities "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/workflows/orders"
	platformobservability "github.com/Apurer/go-gin-backoffice/internal/platform/observability"
	platformtemporal "github.com/Apurer/go-gin-backoffice/internal/platform/temporal"
)

const serviceName = "backoffice-worker"

// Run serves the order status task queue until ctx is cancelled.
func Run(ctx context.Context, cfg api.Config) error {
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

	infra := api.OpenInfrastructure(ctx, cfg, logger)
	defer infra.Close()
	if infra.DB == nil {
		logger.Warn("worker is using an in-memory order repository; status changes will not reach the API process")
	}
	orderService := infra.OrderService(cfg, infra.OrderRepository(), instruments)
	activities := orderactivities.NewActivities(orderService)

	temporalClient, err := platformtemporal.Dial(platformtemporal.Config{
		Address:   cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Disabled:  cfg.TemporalDisabled,
	}, instruments.Tracer("temporal-worker"), logger)
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, orderworkflows.OrderStatusTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(orderworkflows.OrderStatusWorkflow, workflow.RegisterOptions{Name: orderworkflows.OrderStatusWorkflowName})
	w.RegisterActivityWithOptions(activities.UpdateStatus, activity.RegisterOptions{Name: orderactivities.UpdateOrderStatusActivityName})

	stop := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(stop)
	}()
	logger.Info("worker listening", slog.String("taskQueue", orderworkflows.OrderStatusTaskQueue), slog.String("namespace", cfg.TemporalNamespace))
	if err := w.Run(stop); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return err
	}
	logger.Info("Temporal worker stopped")
	return nil
}
