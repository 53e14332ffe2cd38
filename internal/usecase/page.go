package usecase

import "job-board/internal/querystate"

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items    []T `json:"items"`
	Total    int `json:"total"`
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
}

func (p Page[T]) TotalPages() int {
	return querystate.TotalPages(p.Total, p.PageSize)
}

func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = querystate.DefaultPageSize
	}
	if pageSize > querystate.MaxPageSize {
		pageSize = querystate.MaxPageSize
	}
	return page, pageSize
}
