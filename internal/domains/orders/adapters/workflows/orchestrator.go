package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	orderactivities "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/activities/orders"
	orderworkflows "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/workflows/orders"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalOrderWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlineOrderWorkflows)(nil)
)

// TemporalOrderWorkflows starts order status workflows on a Temporal cluster.
type TemporalOrderWorkflows struct {
	client    client.Client
	taskQueue string
}

func NewTemporalOrderWorkflows(c client.Client) *TemporalOrderWorkflows {
	return &TemporalOrderWorkflows{client: c, taskQueue: orderworkflows.OrderStatusTaskQueue}
}

// UpdateStatus starts the workflow and waits for its result.
func (o *TemporalOrderWorkflows) UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal order workflows not configured")
	}
	if !target.Valid() {
		return nil, fmt.Errorf("%w: %w", orderapp.ErrInvalidInput, domain.ErrInvalidStatus)
	}
	traceComponent := workflowTraceComponent(ctx)
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("order-status-%d-%s-%s", id, target, traceComponent),
		TaskQueue: o.taskQueue,

		WorkflowExecutionErrorWhenAlreadyStarted: true,
	}
	run, err := o.client.ExecuteWorkflow(ctx, options, orderworkflows.OrderStatusWorkflow, orderworkflows.OrderStatusWorkflowInput{
		OrderID: id,
		Target:  target,
		TraceID: traceComponent,
	})
	if err != nil {
		// A retried request within the same trace joins the run it already started.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, options.ID, alreadyStarted.RunId)
	}
	var order domain.Order
	if err := run.Get(ctx, &order); err != nil {
		return nil, mapWorkflowError(err)
	}
	return &order, nil
}

// InlineOrderWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlineOrderWorkflows struct {
	service ports.Service
}

func NewInlineOrderWorkflows(service ports.Service) *InlineOrderWorkflows {
	return &InlineOrderWorkflows{service: service}
}

func (o *InlineOrderWorkflows) UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline order workflows not configured")
	}
	return o.service.UpdateStatus(ctx, id, target)
}

// mapWorkflowError restores the application sentinels from non-retryable activity failures.
func mapWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case orderactivities.ErrTypeOrderNotFound:
		return fmt.Errorf("%w: %s", orderapp.ErrOrderNotFound, appErr.Message())
	case orderactivities.ErrTypeInvalidInput:
		return fmt.Errorf("%w: %s", orderapp.ErrInvalidInput, appErr.Message())
	}
	return err
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
