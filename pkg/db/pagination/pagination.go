// Package pagination implements offset paging for dashboard tables.
package pagination

// Pagination is 1-based page/offset paging.
type Pagination struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=6"`
}

// Normalize clamps the page to >= 1 and applies the default page size.
func (p Pagination) Normalize(defaultSize int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageCount returns the number of pages needed for total rows.
func PageCount(total int64, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
