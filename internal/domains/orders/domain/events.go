package domain

import "time"

// Event is the base interface for order domain events.
type Event interface {
	EventName() string
	OccurredAt() time.Time
	AggregateID() int64
}

// BaseEvent provides common event metadata.
type BaseEvent struct {
	OrderID   int64
	Timestamp time.Time
}

// OccurredAt returns when the event occurred.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID returns the order the event belongs to.
func (e BaseEvent) AggregateID() int64 {
	return e.OrderID
}

// OrderStatusChanged is raised after a status transition has been persisted.
type OrderStatusChanged struct {
	BaseEvent
	FromStatus    Status
	ToStatus      Status
	PaymentMethod string
	IsPaid        bool
	PaidDate      *time.Time
}

// EventName returns the event type identifier.
func (e OrderStatusChanged) EventName() string {
	return "orders.order.status_changed"
}

// NewOrderStatusChanged builds the event from the persisted order and the status it left.
func NewOrderStatusChanged(order *Order, from Status, at time.Time) OrderStatusChanged {
	return OrderStatusChanged{
		BaseEvent:     BaseEvent{OrderID: order.ID, Timestamp: at},
		FromStatus:    from,
		ToStatus:      order.Status,
		PaymentMethod: order.PaymentMethod,
		IsPaid:        order.IsPaid,
		PaidDate:      copyTime(order.PaidDate),
	}
}
