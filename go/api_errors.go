package backofficeserver

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/Apurer/go-gin-backoffice/internal/domains/catalog/application"
	employeeapp "github.com/Apurer/go-gin-backoffice/internal/domains/employees/application"
	orderapp "github.com/Apurer/go-gin-backoffice/internal/domains/orders/application"
	reportapp "github.com/Apurer/go-gin-backoffice/internal/domains/reporting/application"
	apierrors "github.com/Apurer/go-gin-backoffice/internal/shared/errors"
)

// problems turns application sentinels into RFC 7807 responses. Anything unmapped is a 500.
var problems = apierrors.NewChainedResponder("",
	apierrors.MapSentinels(apierrors.ErrNotFound,
		orderapp.ErrOrderNotFound, catalogapp.ErrCategoryNotFound, employeeapp.ErrEmployeeNotFound),
	apierrors.MapSentinels(apierrors.ErrConflict,
		catalogapp.ErrSlugTaken, employeeapp.ErrUsernameTaken, orderapp.ErrOrderBusy),
	apierrors.MapSentinels(apierrors.ErrValidation,
		orderapp.ErrInvalidInput, reportapp.ErrInvalidInput, catalogapp.ErrInvalidInput, employeeapp.ErrInvalidInput),
	apierrors.MapSentinels(apierrors.ErrUpstreamMalformed, reportapp.ErrMalformedData),
	apierrors.MapSentinels(apierrors.ErrUpstreamUnavailable, reportapp.ErrSourceUnavailable),
)

func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	problems.RespondError(c, err)
}

// respondBadRequest answers malformed transport input such as an unparsable id or body.
func respondBadRequest(c *gin.Context, err error) {
	problems.BadRequest(c, err.Error())
}
