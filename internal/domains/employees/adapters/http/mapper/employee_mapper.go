package mapper

import (
	"time"

	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/domain"
	"github.com/Apurer/go-gin-backoffice/internal/domains/employees/ports"
	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

type Employee struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email,omitempty"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

type EmployeePage struct {
	Data  []Employee `json:"data"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}

type CreateEmployeeRequest struct {
	Username string   `json:"username" binding:"required"`
	FullName string   `json:"fullName" binding:"required"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

func (r CreateEmployeeRequest) ToInput() ports.EmployeeInput {
	return ports.EmployeeInput{Username: r.Username, FullName: r.FullName, Email: r.Email, Roles: r.Roles}
}

func FromDomainEmployee(e *domain.Employee) Employee {
	if e == nil {
		return Employee{}
	}
	return Employee{
		ID:        e.ID,
		Username:  e.Username,
		FullName:  e.FullName,
		Email:     e.Email,
		Roles:     e.RoleStrings(),
		CreatedAt: e.CreatedAt,
	}
}

func FromDomainPage(page pagination.Page[*domain.Employee]) EmployeePage {
	mapped := pagination.Map(page, FromDomainEmployee)
	return EmployeePage{Data: mapped.Items, Total: mapped.Total, Page: mapped.Page, Limit: mapped.Limit}
}
