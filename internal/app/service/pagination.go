package service

// Pagination describes one page of a table listing. Pages are numbered from 1.
type Pagination struct {
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

func newPagination(page, pageSize, totalItems int) Pagination {
	if pageSize <= 0 {
		pageSize = 5
	}
	if page < 1 {
		page = 1
	}
	totalPages := (totalItems + pageSize - 1) / pageSize
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
