package domain

import "strings"

// Status enumerates the order lifecycle states.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancel     Status = "cancel"
	StatusRefund     Status = "refund"
	StatusReturn     Status = "return"
)

// Colour is the badge colour used by the console for a status.
type Colour string

const (
	ColourWarning Colour = "warning"
	ColourPrimary Colour = "primary"
	ColourSuccess Colour = "success"
	ColourError   Colour = "error"
	ColourDefault Colour = "default"
)

// AllStatuses returns every status in declaration order.
func AllStatuses() []Status {
	return []Status{
		StatusProcessing,
		StatusDelivering,
		StatusDelivered,
		StatusCancel,
		StatusRefund,
		StatusReturn,
	}
}

// ParseStatus normalises raw input into a known status.
func ParseStatus(raw string) (Status, error) {
	status := Status(strings.ToLower(strings.TrimSpace(raw)))
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// Valid reports whether the status belongs to the closed set.
func (s Status) Valid() bool {
	switch s {
	case StatusProcessing, StatusDelivering, StatusDelivered, StatusCancel, StatusRefund, StatusReturn:
		return true
	}
	return false
}

// Label returns the display label. Unknown statuses yield an empty label.
func (s Status) Label() string {
	switch s {
	case StatusProcessing:
		return "In progress processing"
	case StatusDelivering:
		return "In progress shipping"
	case StatusDelivered:
		return "delivered"
	case StatusRefund:
		return "refund"
	case StatusReturn:
		return "return"
	case StatusCancel:
		return "Cancel"
	}
	return ""
}

// Colour returns the badge colour. Unknown statuses yield an empty colour.
func (s Status) Colour() Colour {
	switch s {
	case StatusProcessing:
		return ColourWarning
	case StatusDelivering:
		return ColourPrimary
	case StatusDelivered:
		return ColourSuccess
	case StatusReturn:
		return ColourError
	case StatusCancel, StatusRefund:
		return ColourDefault
	}
	return ""
}
