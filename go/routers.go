package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every admin resource.
type ApiHandleFunctions struct {
	OrderAPI    OrderAPI
	ProductAPI  ProductAPI
	CategoryAPI CategoryAPI
	EmployeeAPI EmployeeAPI
}

// NewRouter returns a new router with every admin route registered.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	return NewRouterWithGinEngine(router, handleFunctions, middleware...)
}

// NewRouterWithGinEngine adds the routes to an existing engine. Middleware is installed before any route.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	router.Use(middleware...)
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc answers routes that have no handler yet.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) []Route {
	return []Route{
		{"ListOrders", http.MethodGet, "/admin/order", handleFunctions.OrderAPI.ListOrders},
		{"GetOrder", http.MethodGet, "/admin/order/:id", handleFunctions.OrderAPI.GetOrder},
		{"UpdateOrderStatus", http.MethodPatch, "/admin/order/update-status/:id", handleFunctions.OrderAPI.UpdateStatus},
		{"DeliverOrder", http.MethodPatch, "/admin/order/:id/deliver", handleFunctions.OrderAPI.Deliver},
		{"CancelOrder", http.MethodPatch, "/admin/order/:id/cancel", handleFunctions.OrderAPI.Cancel},
		{"StatusOverview", http.MethodGet, "/admin/order/overview", handleFunctions.OrderAPI.Overview},
		{"SalesStatistic", http.MethodGet, "/admin/order/sales-statistic", handleFunctions.OrderAPI.SalesStatistic},
		{"TotalRevenue", http.MethodGet, "/admin/order/total-revenue", handleFunctions.OrderAPI.TotalRevenue},
		{"TotalOrder", http.MethodGet, "/admin/order/total-order", handleFunctions.OrderAPI.TotalOrder},
		{"Dashboard", http.MethodGet, "/admin/order/dashboard", handleFunctions.OrderAPI.Dashboard},
		{"TopSelling", http.MethodGet, "/admin/product/top-selling", handleFunctions.ProductAPI.TopSelling},
		{"TotalProduct", http.MethodGet, "/admin/product/total-product", handleFunctions.ProductAPI.TotalProduct},
		{"ListCategories", http.MethodGet, "/admin/category", handleFunctions.CategoryAPI.ListCategories},
		{"GetCategory", http.MethodGet, "/admin/category/:id", handleFunctions.CategoryAPI.GetCategory},
		{"CreateCategory", http.MethodPost, "/admin/category", handleFunctions.CategoryAPI.CreateCategory},
		{"UpdateCategory", http.MethodPatch, "/admin/category/:id", handleFunctions.CategoryAPI.UpdateCategory},
		{"DeleteCategory", http.MethodDelete, "/admin/category/:id", handleFunctions.CategoryAPI.DeleteCategory},
		{"ListEmployees", http.MethodGet, "/admin/user", handleFunctions.EmployeeAPI.ListEmployees},
		{"GetEmployee", http.MethodGet, "/admin/user/:id", handleFunctions.EmployeeAPI.GetEmployee},
		{"CreateEmployee", http.MethodPost, "/admin/user", handleFunctions.EmployeeAPI.CreateEmployee},
		{"DeleteEmployee", http.MethodDelete, "/admin/user/:id", handleFunctions.EmployeeAPI.DeleteEmployee},
	}
}
