package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher records events in memory for development and tests.
type Publisher struct {
	mu     sync.Mutex
	events []domain.Event
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (p *Publisher) Publish(_ context.Context, events ...domain.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

// Events returns a copy of everything published so far.
func (p *Publisher) Events() []domain.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.Event, len(p.events))
	copy(out, p.events)
	return out
}
