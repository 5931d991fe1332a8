package pkg

import (
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuscore/backend/internal/query"
)

// reservedParams lists query parameter names used for pagination/sorting and
// search, never as equality filters.
var reservedParams = map[string]bool{
	"page":       true,
	"limit":      true,
	"sortBy":     true,
	"sortOrder":  true,
	"searchTerm": true,
}

// ParseListQuery extracts the filter bag and raw pagination params from a
// list request. Only keys in the entity's filterable list enter the bag;
// unrecognized keys are silently dropped. A key that is present with an empty
// value still filters — callers omit keys they do not want applied.
func ParseListQuery(c *gin.Context, filterable []string) (query.Filters, query.Params) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	params := query.Params{
		Page:      page,
		Limit:     limit,
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	filters := query.Filters{
		SearchTerm: c.Query("searchTerm"),
		Fields:     make(map[string]string),
	}
	for key, values := range c.Request.URL.Query() {
		if reservedParams[key] || !slices.Contains(filterable, key) {
			continue
		}
		if len(values) > 0 {
			filters.Fields[key] = values[0]
		}
	}

	return filters, params
}
