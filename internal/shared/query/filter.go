package query

import "github.com/estately-inc/estately/internal/shared/constants"

// PageFilter is a 1-indexed pagination window.
type PageFilter struct {
	Page     int
	PageSize int
}

// NewPageFilter normalizes page and pageSize; non-positive values fall back
// to the defaults, page is capped at MaxPage and pageSize at MaxPageSize.
func NewPageFilter(page, pageSize int) PageFilter {
	if page < 1 {
		page = constants.DefaultPage
	}
	if page > constants.MaxPage {
		page = constants.MaxPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return PageFilter{Page: page, PageSize: pageSize}
}

func (f PageFilter) Offset() int {
	if f.Page <= 0 {
		return 0
	}
	return (min(f.Page, constants.MaxPage) - 1) * f.Limit()
}

func (f PageFilter) Limit() int {
	if f.PageSize <= 0 {
		return constants.DefaultPageSize
	}
	if f.PageSize > constants.MaxPageSize {
		return constants.MaxPageSize
	}
	return f.PageSize
}

// Window describes where a page sits inside the full result set.
// FirstIndex and LastIndex are 1-indexed item numbers, both 0 for an empty page.
type Window struct {
	TotalPages int
	FirstIndex int64
	LastIndex  int64
}

// WindowFor computes the display window for total matching rows when
// itemsOnPage rows were returned for this page.
func (f PageFilter) WindowFor(total int64, itemsOnPage int) Window {
	size := int64(f.Limit())
	w := Window{TotalPages: int((total + size - 1) / size)}
	if itemsOnPage == 0 {
		return w
	}
	w.FirstIndex = int64(f.Offset()) + 1
	w.LastIndex = w.FirstIndex + int64(itemsOnPage) - 1
	return w
}
