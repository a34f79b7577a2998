package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

// WorkflowOrchestrator runs status changes, either durably or inline.
type WorkflowOrchestrator interface {
	UpdateStatus(ctx context.Context, id int64, target domain.Status) (*domain.Order, error)
}
