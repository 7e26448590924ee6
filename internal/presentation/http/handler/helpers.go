package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fng-app/fng-sales-api/internal/presentation/http/middleware"
	"github.com/fng-app/fng-sales-api/pkg/pagination"
)

// GetUserID extracts the authenticated user ID from the Gin context, or ""
func GetUserID(c *gin.Context) string {
	return c.GetString(middleware.ContextUserID)
}

// GetUserName extracts the authenticated user's display name, or ""
func GetUserName(c *gin.Context) string {
	return c.GetString(middleware.ContextUserName)
}

// paginationParams reads page and per_page. ok is false when neither is present.
func paginationParams(c *gin.Context) (*pagination.PaginationParams, bool) {
	pageStr, hasPage := c.GetQuery("page")
	perPageStr, hasPerPage := c.GetQuery("per_page")
	if !hasPage && !hasPerPage {
		return nil, false
	}

	params := pagination.DefaultPagination()
	if n, err := strconv.Atoi(pageStr); err == nil {
		params.Page = n
	}
	if n, err := strconv.Atoi(perPageStr); err == nil {
		params.PerPage = n
	}
	params.Validate()
	return params, true
}
