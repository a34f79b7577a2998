package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyName   = errors.New("category name is required")
	ErrInvalidSlug = errors.New("category slug must be lowercase alphanumerics separated by single hyphens")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateName accepts any name that is non-empty after trimming.
func ValidateName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidateSlug accepts URL-safe slugs such as "summer-2024".
func ValidateSlug(slug string) bool {
	return slugPattern.MatchString(slug)
}

// Category groups products on the storefront.
type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory builds an active category after validating its name and slug.
func NewCategory(name, slug, description string) (*Category, error) {
	c := &Category{IsActive: true}
	if err := c.Rename(name); err != nil {
		return nil, err
	}
	if err := c.SetSlug(slug); err != nil {
		return nil, err
	}
	c.Description = strings.TrimSpace(description)
	return c, nil
}

func (c *Category) Rename(name string) error {
	if !ValidateName(name) {
		return ErrEmptyName
	}
	c.Name = strings.TrimSpace(name)
	return nil
}

// SetSlug trims surrounding blanks; the remainder must match the slug grammar exactly.
func (c *Category) SetSlug(slug string) error {
	slug = strings.TrimSpace(slug)
	if !ValidateSlug(slug) {
		return ErrInvalidSlug
	}
	c.Slug = slug
	return nil
}

func (c *Category) Validate() error {
	if !ValidateName(c.Name) {
		return ErrEmptyName
	}
	if !ValidateSlug(c.Slug) {
		return ErrInvalidSlug
	}
	return nil
}
