package ports

import (
	"context"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

// EventPublisher forwards persisted order events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}
