package domain

import (
	"errors"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

var (
	// ErrInvalidStatus is shared with the orders context so callers can match either.
	ErrInvalidStatus       = orderdomain.ErrInvalidStatus
	ErrInvalidMonth        = errors.New("month must be between 1 and 12")
	ErrInvalidSalesCount   = errors.New("sales count must not be negative")
	ErrDuplicateStatusKey  = errors.New("status reported more than once")
	ErrEmptyProductName    = errors.New("product name must not be empty")
	ErrInvalidProductCount = errors.New("product count must not be negative")
)
