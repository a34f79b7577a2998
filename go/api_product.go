package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reporthttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/http/mapper"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

// ProductAPI serves product rankings and counts.
type ProductAPI struct {
	reports reportports.Service
}

func NewProductAPI(reports reportports.Service) ProductAPI {
	return ProductAPI{reports: reports}
}

// Get /admin/product/top-selling
// Best sellers first, ?limit defaults to five
func (api *ProductAPI) TopSelling(c *gin.Context) {
	var limit int
	if !queryInt(c, "limit", &limit) {
		return
	}
	records, err := api.reports.TopSelling(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromTopSelling(records))
}

// Get /admin/product/total-product
// Distinct products sold through orders, as a bare number
func (api *ProductAPI) TotalProduct(c *gin.Context) {
	total, err := api.reports.TotalProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, total)
}
