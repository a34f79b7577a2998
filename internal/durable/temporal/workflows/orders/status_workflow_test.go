package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	ordermemory "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/memory"
	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	orderactivities "github.com/Apurer/go-gin-backoffice/internal/durable/temporal/activities/orders"
)

func newWorkflowEnv(t *testing.T) (*testsuite.TestWorkflowEnvironment, *ordermemory.Repository) {
	t.Helper()
	repo := ordermemory.NewRepository()
	_, err := repo.Save(context.Background(), &domain.Order{
		ID:            1,
		FullName:      "Jane Roe",
		PaymentMethod: domain.MethodCOD,
		Status:        domain.StatusDelivering,
		TotalPrice:    decimal.RequireFromString("12.00"),
		CreatedDate:   time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var suite testsuite.WorkflowTestSuite
	env := suite.NewTestWorkflowEnvironment()
	acts := orderactivities.NewActivities(orderapp.NewService(repo))
	env.RegisterActivityWithOptions(acts.UpdateStatus, activity.RegisterOptions{Name: orderactivities.UpdateOrderStatusActivityName})
	return env, repo
}

func TestOrderStatusWorkflow_AppliesTransition(t *testing.T) {
	env, repo := newWorkflowEnv(t)

	env.ExecuteWorkflow(OrderStatusWorkflow, OrderStatusWorkflowInput{OrderID: 1, Target: domain.StatusDelivered})
	require.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var result domain.Order
	require.NoError(t, env.GetWorkflowResult(&result))
	require.Equal(t, domain.StatusDelivered, result.Status)
	require.True(t, result.IsPaid)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, domain.StatusDelivered, stored.Status)
}

func TestOrderStatusWorkflow_MissingOrderIsNotRetried(t *testing.T) {
	env, _ := newWorkflowEnv(t)

	env.ExecuteWorkflow(OrderStatusWorkflow, OrderStatusWorkflowInput{OrderID: 404, Target: domain.StatusCancel})
	require.True(t, env.IsWorkflowCompleted())

	err := env.GetWorkflowError()
	require.Error(t, err)
	var appErr *temporal.ApplicationError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, orderactivities.ErrTypeOrderNotFound, appErr.Type())
	require.True(t, appErr.NonRetryable())
}
