package domain

import "time"

// Snapshot is the part of an order the status policy depends on.
type Snapshot struct {
	Status        Status
	PaymentMethod string
	IsPaid        bool
	PaidDate      *time.Time
}

// Outcome is the status and payment state after a transition.
type Outcome struct {
	Status   Status
	IsPaid   bool
	PaidDate *time.Time
}

// Transition computes the next status/payment state. Every status may move to
// every other one; refunds and returns after delivery are ordinary back-edges.
//
// COD orders are settled on delivery and cannot be paid once cancelled before
// settlement. Other methods are paid up front and are never unset here.
func Transition(current Snapshot, target Status, now time.Time) (Outcome, error) {
	if !target.Valid() {
		return Outcome{}, ErrInvalidStatus
	}
	out := Outcome{
		Status:   target,
		IsPaid:   current.IsPaid,
		PaidDate: copyTime(current.PaidDate),
	}
	cod := IsCOD(current.PaymentMethod)
	switch target {
	case StatusDelivered:
		if cod {
			out.IsPaid = true
			if out.PaidDate == nil {
				paid := now
				out.PaidDate = &paid
			}
		}
	case StatusCancel:
		if cod && !current.IsPaid {
			out.IsPaid = false
			out.PaidDate = nil
		}
	}
	return out, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
