package orders

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/activities/orders"
)

const (
	// OrderStatusWorkflowName is the public identifier for registering the workflow.
	OrderStatusWorkflowName = "orders.workflows.UpdateStatus"
	// OrderStatusTaskQueue is the queue consumed by the worker processing order workflows.
	OrderStatusTaskQueue = "ORDER_STATUS"
)

type OrderStatusWorkflowInput struct {
	OrderID int64
	Target  domain.Status
	TraceID string
}

// OrderStatusWorkflow applies a status change durably, retrying transient store failures.
func OrderStatusWorkflow(ctx workflow.Context, input OrderStatusWorkflowInput) (*domain.Order, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("OrderStatusWorkflow started", withTraceID(input.TraceID, "orderId", input.OrderID, "target", string(input.Target))...)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
			NonRetryableErrorTypes: []string{
				orderactivities.ErrTypeOrderNotFound,
				orderactivities.ErrTypeInvalidInput,
			},
		},
	})

	var order domain.Order
	err := workflow.ExecuteActivity(ctx, orderactivities.UpdateOrderStatusActivityName, orderactivities.UpdateStatusInput{
		OrderID: input.OrderID,
		Target:  input.Target,
	}).Get(ctx, &order)
	if err != nil {
		logger.Error("OrderStatusWorkflow failed", withTraceID(input.TraceID, "orderId", input.OrderID, "error", err)...)
		return nil, err
	}
	logger.Info("OrderStatusWorkflow completed", withTraceID(input.TraceID, "orderId", order.ID, "status", string(order.Status))...)
	return &order, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
