package services

// 6 jobs on the home listing, 10 rows on company/application/bookmark panels.
const (
	listingPageSize = 6
	panelPageSize   = 10
)

// Pagination describes one page of a result set.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// paginate clamps the requested page into the valid range and returns the
// page metadata plus the row offset. Out-of-range pages never error: too
// small goes to the first page, too large to the last.
func paginate(total int64, page, size int) (Pagination, int) {
	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	return Pagination{
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages,
		TotalCount: total,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, (page - 1) * size
}
