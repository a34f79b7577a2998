package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
	// ErrOrderNotFound is returned verbatim from the store when the order is unknown.
	ErrOrderNotFound = ports.ErrNotFound
	// ErrPersistence wraps store failures while saving a transition.
	ErrPersistence = errors.New("order persistence failed")
	// ErrOrderBusy means the caller gave up waiting for another update of the same order.
	ErrOrderBusy = errors.New("order is being updated")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrInvalidStatus) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrInvalidPrice) ||
		errors.Is(err, domain.ErrPaidDateUnpaid) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
