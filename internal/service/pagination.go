package service

import "github.com/formhive/formhive-backend/internal/response"

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

// clampPaging normalizes raw page/per_page query values.
func clampPaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// buildPagination derives the envelope paging block from a clamped
// page/per_page pair and a total row count.
func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
