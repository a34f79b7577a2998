package mapper

import (
	"time"

	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CategoryPage struct {
	Data  []Category `json:"data"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

// CategoryRequest is the body of POST and PATCH /admin/category.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

func (r CategoryRequest) ToInput() ports.CategoryInput {
	return ports.CategoryInput{Name: r.Name, Slug: r.Slug, Description: r.Description, IsActive: r.IsActive}
}

func FromDomainCategory(c *domain.Category) Category {
	if c == nil {
		return Category{}
	}
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDomainPage(page pagination.Page[*domain.Category]) CategoryPage {
	mapped := pagination.Map(page, FromDomainCategory)
	return CategoryPage{Data: mapped.Items, Total: mapped.Total, Page: mapped.Page, Limit: mapped.Limit}
}
