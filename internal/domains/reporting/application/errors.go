package application

import (
	"errors"
	"fmt"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/reporting/domain"
)

var (
	// ErrInvalidInput signals a bad year or limit from the caller.
	ErrInvalidInput = errors.New("invalid report request")
	// ErrSourceUnavailable wraps failures of the reporting source.
	ErrSourceUnavailable = errors.New("reporting source unavailable")
	// ErrMalformedData signals the source returned rows the aggregators reject.
	ErrMalformedData = errors.New("malformed reporting data")
)

func mapAggregateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidMonth) ||
		errors.Is(err, domain.ErrInvalidSalesCount) ||
		errors.Is(err, domain.ErrDuplicateStatusKey) ||
		errors.Is(err, domain.ErrEmptyProductName) ||
		errors.Is(err, domain.ErrInvalidProductCount) ||
		errors.Is(err, orderdomain.ErrInvalidPrice) ||
		errors.Is(err, orderdomain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrMalformedData, err)
	}
	return err
}

func sourceError(op string, err error) error {
	if mapped := mapAggregateError(err); mapped != err {
		return mapped
	}
	return fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, op, err)
}
