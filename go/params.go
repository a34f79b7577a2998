package backofficeserver

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"github.com/Apurer/go-gin-backoffice/internal/shared/pagination"
)

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondBadRequest(c, fmt.Errorf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// queryInt binds an optional integer query parameter, leaving dest untouched when absent.
func queryInt(c *gin.Context, name string, dest *int) bool {
	if err := runtime.BindQueryParameter("form", true, false, name, c.Request.URL.Query(), dest); err != nil {
		respondBadRequest(c, err)
		return false
	}
	return true
}

// pageQuery reads limit, page and the keyword parameter named by keywordParam.
func pageQuery(c *gin.Context, keywordParam string) (pagination.Query, bool) {
	var query pagination.Query
	if !queryInt(c, "limit", &query.Limit) || !queryInt(c, "page", &query.Page) {
		return pagination.Query{}, false
	}
	query.Keyword = c.Query(keywordParam)
	return query, true
}
