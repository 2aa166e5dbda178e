package response

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mianahmadali/Arain-Association-Youth-Wing-Pakistan-App/internal/apperror"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Pagination struct {
	Page  int
	Limit int
}

// ParsePagination reads page/limit query parameters. page >= 1 and
// 1 <= limit <= 100; anything else is a validation error.
func ParsePagination(c *gin.Context) (Pagination, error) {
	p := Pagination{Page: 1, Limit: DefaultLimit}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return p, apperror.Validation("page", "must be an integer >= 1")
		}
		p.Page = page
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > MaxLimit {
			return p, apperror.Validation("limit", "must be an integer between 1 and 100")
		}
		p.Limit = limit
	}

	return p, nil
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages is ceil(total/limit), 0 only when total is 0.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return pages
}
