package services

// Pagination is the metadata block returned alongside every list response.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}

func paginate(page, perPage int, total int64) Pagination {
	pages := int(total) / perPage
	if int(total)%perPage != 0 {
		pages++
	}
	return Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalPages: pages,
		TotalItems: total,
	}
}
