package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput     = errors.New("invalid employee input")
	ErrEmployeeNotFound = ports.ErrNotFound
	ErrUsernameTaken    = ports.ErrUsernameTaken
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyUsername) ||
		errors.Is(err, domain.ErrEmptyFullName) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrInvalidRole) ||
		errors.Is(err, domain.ErrNoRoles) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
