package kafka

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	platformkafka "github.com/Apurer/go-gin-backoffice/internal/platform/kafka"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Envelope is the wire format of order events on the topic.
type Envelope struct {
	EventID    string         `json:"event_id"`
	Type       string         `json:"type"`
	OrderID    int64          `json:"order_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}

// Publisher writes order events to Kafka keyed by order id.
type Publisher struct {
	writer  platformkafka.Writer
	eventID func() string
}

func NewPublisher(writer platformkafka.Writer) *Publisher {
	return &Publisher{writer: writer, eventID: uuid.NewString}
}

func (p *Publisher) Publish(ctx context.Context, events ...domain.Event) error {
	if p == nil || p.writer == nil {
		return errors.New("kafka order publisher not configured")
	}
	var errs []error
	for _, event := range events {
		if event == nil {
			continue
		}
		envelope := p.envelope(event)
		if err := platformkafka.PublishJSON(ctx, p.writer, strconv.FormatInt(envelope.OrderID, 10), envelope); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Publisher) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func (p *Publisher) envelope(event domain.Event) Envelope {
	env := Envelope{
		EventID:    p.eventID(),
		Type:       event.EventName(),
		OrderID:    event.AggregateID(),
		OccurredAt: event.OccurredAt().UTC(),
		Payload:    map[string]any{},
	}
	if changed, ok := event.(domain.OrderStatusChanged); ok {
		env.Payload["from_status"] = string(changed.FromStatus)
		env.Payload["to_status"] = string(changed.ToStatus)
		env.Payload["payment_method"] = changed.PaymentMethod
		env.Payload["is_paid"] = changed.IsPaid
		if changed.PaidDate != nil {
			env.Payload["paid_date"] = changed.PaidDate.UTC().Format(time.RFC3339)
		}
	}
	return env
}
