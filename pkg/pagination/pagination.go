package pagination

import (
	"net/http"
	"strconv"
)

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// DefaultParams returns sensible pagination defaults.
func DefaultParams() Params {
	return Params{
		Page:    1,
		PerPage: 20,
		Offset:  0,
	}
}

// FromRequest extracts pagination parameters from an HTTP request.
func FromRequest(r *http.Request) Params {
	p := DefaultParams()

	if page := r.URL.Query().Get("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			p.Page = v
		}
	}

	if perPage := r.URL.Query().Get("per_page"); perPage != "" {
		if v, err := strconv.Atoi(perPage); err == nil && v > 0 && v <= 100 {
			p.PerPage = v
		}
	}

	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// Result wraps a paginated response.
type Result[T any] struct {
	Data       []T   `json:"data"`
	TotalCount int   `json:"total_count"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
	Pages      []int `json:"pages"`
}

// NewResult creates a paginated result. Pages carries the compressed
// page-number sequence for rendering the pager control.
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	totalPages := totalCount / params.PerPage
	if totalCount%params.PerPage > 0 {
		totalPages++
	}

	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
		Pages:      PageNumbers(params.Page, totalPages),
	}
}

// Ellipsis is the marker value used in PageNumbers for a collapsed gap.
const Ellipsis = -1

// PageNumbers computes the page-number sequence for a pager control.
// Up to 7 pages are listed in full. Beyond that the first and last pages
// are always present, a window of [current-1, current+1] is kept around
// the current page, and any gap wider than one page collapses into a
// single Ellipsis marker.
func PageNumbers(current, total int) []int {
	if total <= 0 {
		return []int{}
	}

	if total <= 7 {
		pages := make([]int, 0, total)
		for i := 1; i <= total; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	pages := []int{1}

	if current > 3 {
		pages = append(pages, Ellipsis)
	}

	start := max(2, current-1)
	end := min(total-1, current+1)
	for i := start; i <= end; i++ {
		if !contains(pages, i) {
			pages = append(pages, i)
		}
	}

	if current < total-2 {
		pages = append(pages, Ellipsis)
	}

	if !contains(pages, total) {
		pages = append(pages, total)
	}

	return pages
}

// ItemRange returns the 1-based index of the first and last item shown on
// the given page, for "showing X to Y of Z" labels. Returns (0, 0) when
// there are no items.
func ItemRange(page, perPage, totalItems int) (start, end int) {
	if totalItems <= 0 || page < 1 || perPage < 1 {
		return 0, 0
	}

	start = (page-1)*perPage + 1
	if start > totalItems {
		return 0, 0
	}

	end = min(page*perPage, totalItems)
	return start, end
}

func contains(pages []int, page int) bool {
	for _, p := range pages {
		if p == page {
			return true
		}
	}
	return false
}
