package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MethodCOD is the cash-on-delivery payment method. COD orders settle payment at delivery.
const MethodCOD = "COD"

var (
	ErrInvalidStatus   = errors.New("order status is invalid")
	ErrInvalidQuantity = errors.New("ordered quantity must not be negative")
	ErrInvalidPrice    = errors.New("price must not be negative")
	ErrPaidDateUnpaid  = errors.New("paid date set on an unpaid order")
)

// OrderItem is a line of an order. OrderedPrice is frozen at order time.
type OrderItem struct {
	VariantID       int64
	ProductName     string
	OrderedQuantity int32
	OrderedPrice    decimal.Decimal
}

// Order models the back-office view of a customer purchase.
type Order struct {
	ID            int64
	FullName      string
	Phone         string
	Address       string
	PaymentMethod string
	IsPaid        bool
	PaidDate      *time.Time
	Status        Status
	ShippingCost  decimal.Decimal
	TotalPrice    decimal.Decimal
	CreatedDate   time.Time
	Items         []OrderItem
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if !o.Status.Valid() {
		return ErrInvalidStatus
	}
	if o.PaidDate != nil && !o.IsPaid {
		return ErrPaidDateUnpaid
	}
	if o.ShippingCost.IsNegative() || o.TotalPrice.IsNegative() {
		return ErrInvalidPrice
	}
	for _, item := range o.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the line quantities and frozen price.
func (i OrderItem) Validate() error {
	if i.OrderedQuantity < 0 {
		return ErrInvalidQuantity
	}
	if i.OrderedPrice.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}

// IsCOD reports whether the order is paid on delivery.
func (o *Order) IsCOD() bool {
	return IsCOD(o.PaymentMethod)
}

// IsCOD reports whether the payment method label denotes cash on delivery.
func IsCOD(method string) bool {
	return strings.EqualFold(strings.TrimSpace(method), MethodCOD)
}

// Clone returns a deep copy so callers never share item slices or the paid date.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	if o.PaidDate != nil {
		paid := *o.PaidDate
		clone.PaidDate = &paid
	}
	if o.Items != nil {
		clone.Items = make([]OrderItem, len(o.Items))
		copy(clone.Items, o.Items)
	}
	return &clone
}

// ApplyTransition moves the order to target according to the status policy.
func (o *Order) ApplyTransition(target Status, now time.Time) (Outcome, error) {
	outcome, err := Transition(o.Snapshot(), target, now)
	if err != nil {
		return Outcome{}, err
	}
	o.Status = outcome.Status
	o.IsPaid = outcome.IsPaid
	o.PaidDate = outcome.PaidDate
	return outcome, nil
}

// Snapshot captures the fields the status policy reads.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		IsPaid:        o.IsPaid,
		PaidDate:      o.PaidDate,
	}
}
