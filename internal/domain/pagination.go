package domain

// PaginationParams selects one page of a list result.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the index of the first item on the page. Pages are 1-based;
// anything below 1 maps to the start of the list.
func (p PaginationParams) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
