package pkg

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/warecat/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

// ParseListQuery extracts pagination, search, and sorting parameters from the
// request query string. Untrusted values are normalized, never rejected:
// non-numeric or out-of-range page/limit values fall back to defaults or are
// clamped into range, so list endpoints cannot fail on bad input.
func ParseListQuery(c *gin.Context) domain.ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(defaultPage)))
	if err != nil || page < 1 {
		page = defaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil {
		limit = defaultLimit
	}
	limit = domain.ClampLimit(limit)

	return domain.ListQuery{
		Page:      page,
		Limit:     limit,
		Search:    strings.TrimSpace(c.Query("search")),
		SortBy:    strings.TrimSpace(c.Query("sort_by")),
		SortOrder: strings.TrimSpace(c.Query("sort_order")),
	}
}
