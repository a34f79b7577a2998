package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput     = errors.New("invalid category input")
	ErrCategoryNotFound = ports.ErrNotFound
	ErrSlugTaken        = ports.ErrSlugTaken
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyName) || errors.Is(err, domain.ErrInvalidSlug) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
