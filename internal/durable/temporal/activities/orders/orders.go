package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
)

const (
	// UpdateOrderStatusActivityName applies one status transition through the orders service.
	UpdateOrderStatusActivityName = "orders.activities.UpdateStatus"

	// Application error types that must not be retried.
	ErrTypeOrderNotFound = "OrderNotFound"
	ErrTypeInvalidInput  = "InvalidOrderInput"
)

// UpdateStatusInput is the activity payload.
type UpdateStatusInput struct {
	OrderID int64
	Target  domain.Status
}

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ports.Service
}

func NewActivities(service ports.Service) *Activities {
	return &Activities{service: service}
}

// UpdateStatus runs the locked load-transition-save cycle. Validation and missing
// orders are reported as non-retryable so the workflow fails fast.
func (a *Activities) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("order status activity not initialized", "orderId", input.OrderID)
		return nil, errors.New("order status activity not initialized")
	}
	logger.Info("UpdateStatus activity started", "orderId", input.OrderID, "target", string(input.Target))
	order, err := a.service.UpdateStatus(ctx, input.OrderID, input.Target)
	if err != nil {
		logger.Error("UpdateStatus activity failed", "orderId", input.OrderID, "error", err)
		switch {
		case errors.Is(err, orderapp.ErrOrderNotFound):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOrderNotFound, err)
		case errors.Is(err, orderapp.ErrInvalidInput):
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, err)
		}
		return nil, err
	}
	logger.Info("UpdateStatus activity completed", "orderId", order.ID, "status", string(order.Status))
	return order, nil
}
