package backofficeserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderhttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/orders/adapters/http/mapper"
	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-gin-backoffice/internal/domains/orders/ports"
	reporthttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/adapters/http/mapper"
	reportports "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/ports"
)

// OrderAPI serves the order screens of the admin console: listing, status changes and dashboard aggregates.
type OrderAPI struct {
	orders    orderports.Service
	workflows orderports.WorkflowOrchestrator
	reports   reportports.Service
}

// NewOrderAPI creates an OrderAPI. Status changes go through workflows, which may run inline.
func NewOrderAPI(orders orderports.Service, workflows orderports.WorkflowOrchestrator, reports reportports.Service) OrderAPI {
	return OrderAPI{orders: orders, workflows: workflows, reports: reports}
}

// Get /admin/order
// Lists orders, newest first
func (api *OrderAPI) ListOrders(c *gin.Context) {
	query, ok := pageQuery(c, "keyword")
	if !ok {
		return
	}
	page, err := api.orders.ListOrders(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	out, err := orderhttpmapper.FromDomainPage(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get /admin/order/:id
func (api *OrderAPI) GetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	order, err := api.orders.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOrder(c, order)
}

// Patch /admin/order/update-status/:id
// Moves an order to the requested status and settles COD payment
func (api *OrderAPI) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload orderhttpmapper.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	target, err := orderdomain.ParseStatus(payload.OrderStatus)
	if err != nil {
		respondError(c, fmt.Errorf("%w: %w", orderapp.ErrInvalidInput, err))
		return
	}
	api.transition(c, id, target)
}

// Patch /admin/order/:id/deliver
func (api *OrderAPI) Deliver(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	api.transition(c, id, orderdomain.StatusDelivered)
}

// Patch /admin/order/:id/cancel
func (api *OrderAPI) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	api.transition(c, id, orderdomain.StatusCancel)
}

func (api *OrderAPI) transition(c *gin.Context, id int64, target orderdomain.Status) {
	var (
		updated *orderdomain.Order
		err     error
	)
	if api.workflows != nil {
		updated, err = api.workflows.UpdateStatus(c.Request.Context(), id, target)
	} else {
		updated, err = api.orders.UpdateStatus(c.Request.Context(), id, target)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	respondOrder(c, updated)
}

// respondOrder answers 500 when stored items are inconsistent rather than reporting zero totals.
func respondOrder(c *gin.Context, order *orderdomain.Order) {
	out, err := orderhttpmapper.FromDomainOrder(order)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get /admin/order/overview
// Order counts per status in the fixed histogram order
func (api *OrderAPI) Overview(c *gin.Context) {
	histogram, err := api.reports.StatusHistogram(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromHistogram(histogram))
}

// Get /admin/order/sales-statistic
// Monthly delivered sales per payment method for ?year, the current year when omitted
func (api *OrderAPI) SalesStatistic(c *gin.Context) {
	var year int
	if !queryInt(c, "year", &year) {
		return
	}
	series, err := api.reports.MonthlySales(c.Request.Context(), year)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromMonthlySeries(series))
}

// Get /admin/order/total-revenue
func (api *OrderAPI) TotalRevenue(c *gin.Context) {
	summary, err := api.reports.RevenueSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.TotalRevenue{TotalRevenue: summary.TotalRevenue})
}

// Get /admin/order/total-order
// Answers the bare order count
func (api *OrderAPI) TotalOrder(c *gin.Context) {
	summary, err := api.reports.RevenueSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary.TotalOrders)
}

// Get /admin/order/dashboard
func (api *OrderAPI) Dashboard(c *gin.Context) {
	var year, limit int
	if !queryInt(c, "year", &year) || !queryInt(c, "limit", &limit) {
		return
	}
	dashboard, err := api.reports.Dashboard(c.Request.Context(), year, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reporthttpmapper.FromDashboard(dashboard))
}
