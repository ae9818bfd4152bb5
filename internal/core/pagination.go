// AngelaMos | 2026
// pagination.go

package core

import (
	"net/http"
	"strconv"
)

// PageParams is the page/limit pair accepted by every list endpoint.
// Limit 0 means "everything on one page".
type PageParams struct {
	Page  int
	Limit int
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func ParsePageParams(r *http.Request) PageParams {
	q := r.URL.Query()
	p := PageParams{
		Page:  ParseIntQuery(r, "page", 1),
		Limit: ParseIntQuery(r, "limit", 0),
	}
	if q.Get("page") == "" || p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 0 {
		p.Limit = 0
	}
	return p
}

func (p PageParams) Paginated() bool {
	return p.Limit > 0
}

func (p PageParams) Offset() int {
	if !p.Paginated() {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

func NewPagination(p PageParams, total int) Pagination {
	pg := Pagination{
		Total: total,
		Page:  p.Page,
		Limit: p.Limit,
		Pages: 1,
	}

	if p.Paginated() {
		pg.Pages = (total + p.Limit - 1) / p.Limit
	} else {
		pg.Limit = total
	}

	return pg
}

func ParseIntQuery(r *http.Request, key string, defaultVal int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultVal
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}

	return parsed
}

// ParseBoolQuery returns nil when the parameter is absent or not a boolean.
func ParseBoolQuery(r *http.Request, key string) *bool {
	val := r.URL.Query().Get(key)
	if val == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return nil
	}

	return &parsed
}
