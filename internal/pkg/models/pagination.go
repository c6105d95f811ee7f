package models

import "github.com/CHOIisaac/chalna-api/internal/pkg/constants"

// PageRequest is the normalized page/limit pair parsed from query params
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps the request to the configured defaults and bounds
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = constants.DefaultPageSize
	}
	if p.Limit > constants.MaxPageSize {
		p.Limit = constants.MaxPageSize
	}
	return p
}

// Offset returns the row offset for the normalized page
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the paging envelope returned by list endpoints
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalItems  int64 `json:"total_items"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

// NewPagination computes the paging envelope for a total row count
func NewPagination(req PageRequest, totalItems int64) Pagination {
	totalPages := int(totalItems) / req.Limit
	if int(totalItems)%req.Limit != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasNext:     req.Page < totalPages,
		HasPrev:     req.Page > 1,
	}
}
