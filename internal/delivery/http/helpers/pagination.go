package helpers

import (
	"net/http"
	"strconv"

	"campusevents/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// queryInt parses an integer query parameter, falling back when the value is
// missing, malformed, or below min.
func queryInt(r *http.Request, key string, fallback, min int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < min {
		return fallback
	}
	return v
}

// ParsePagination reads page and page_size from the query string and clamps
// page_size to MaxPageSize. Bad values silently fall back to the defaults so
// list endpoints never fail on pagination input.
func ParsePagination(r *http.Request) domain.PaginationParams {
	p := domain.PaginationParams{
		Page:     queryInt(r, "page", DefaultPage, 1),
		PageSize: queryInt(r, "page_size", DefaultPageSize, 1),
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta builds PaginationMeta for a list of total items.
// TotalPages is ceiling(total/pageSize), 0 when pageSize is 0.
func NewPaginationMeta(page, pageSize, total int) PaginationMeta {
	meta := PaginationMeta{Page: page, PageSize: pageSize, Total: total}
	if pageSize > 0 {
		meta.TotalPages = (total + pageSize - 1) / pageSize
	}
	return meta
}
