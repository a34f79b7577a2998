package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cataloghttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/adapters/http/mapper"
	catalogports "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/ports"
)

// CategoryAPI manages product categories.
type CategoryAPI struct {
	service catalogports.Service
}

func NewCategoryAPI(service catalogports.Service) CategoryAPI {
	return CategoryAPI{service: service}
}

// Get /admin/category
func (api *CategoryAPI) ListCategories(c *gin.Context) {
	query, ok := pageQuery(c, "keyword")
	if !ok {
		return
	}
	page, err := api.service.ListCategories(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainPage(page))
}

// Get /admin/category/:id
func (api *CategoryAPI) GetCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	category, err := api.service.GetCategory(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainCategory(category))
}

// Post /admin/category
func (api *CategoryAPI) CreateCategory(c *gin.Context) {
	var payload cataloghttpmapper.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := api.service.CreateCategory(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cataloghttpmapper.FromDomainCategory(category))
}

// Patch /admin/category/:id
func (api *CategoryAPI) UpdateCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload cataloghttpmapper.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	category, err := api.service.UpdateCategory(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cataloghttpmapper.FromDomainCategory(category))
}

// Delete /admin/category/:id
func (api *CategoryAPI) DeleteCategory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteCategory(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
