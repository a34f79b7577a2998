package backofficeserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	employeehttpmapper "github.com/Apurer/go-gin-backoffice/internal/domains/employees/adapters/http/mapper"
	employeeports "github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
)

// EmployeeAPI manages back-office staff accounts.
type EmployeeAPI struct {
	service employeeports.Service
}

func NewEmployeeAPI(service employeeports.Service) EmployeeAPI {
	return EmployeeAPI{service: service}
}

// Get /admin/user
// Lists employees filtered by ?name
func (api *EmployeeAPI) ListEmployees(c *gin.Context) {
	query, ok := pageQuery(c, "name")
	if !ok {
		return
	}
	page, err := api.service.ListEmployees(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employeehttpmapper.FromDomainPage(page))
}

// Get /admin/user/:id
func (api *EmployeeAPI) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employee, err := api.service.GetEmployee(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employeehttpmapper.FromDomainEmployee(employee))
}

// Post /admin/user
func (api *EmployeeAPI) CreateEmployee(c *gin.Context) {
	var payload employeehttpmapper.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondBadRequest(c, err)
		return
	}
	employee, err := api.service.CreateEmployee(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employeehttpmapper.FromDomainEmployee(employee))
}

// Delete /admin/user/:id
func (api *EmployeeAPI) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := api.service.DeleteEmployee(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
