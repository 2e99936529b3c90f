package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shelterhq/pawhaven/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page  int
	Limit int
}

// Offset returns the record offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ValidatePagination validates and normalizes pagination parameters.
// Page defaults to DefaultPage if less than 1.
// Limit defaults to DefaultLimit if less than 1, and is capped at MaxLimit.
func ValidatePagination(page, limit int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}

	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return Pagination{
		Page:  page,
		Limit: limit,
	}
}

// ParsePagination parses page and limit query parameters from the Gin context.
// Returns validated pagination with defaults applied.
func ParsePagination(c *gin.Context) Pagination {
	page := parseQueryInt(c, "page", constants.DefaultPage)
	limit := parseQueryInt(c, "limit", constants.DefaultLimit)
	return ValidatePagination(page, limit)
}

// parseQueryInt parses an integer query parameter with a default value.
func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, limit int) int {
	if total == 0 || limit == 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
