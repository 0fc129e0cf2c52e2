package pagination

import "math"

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MinPerPage     = 5
	MaxPerPage     = 100
)

// Params is a normalized page request. Build it with Clamp.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"perPage"`
}

// Clamp normalizes caller supplied paging values. Zero means unset and
// falls back to the defaults, which already sit inside the bounds.
func Clamp(page, perPage int) Params {
	if page < 1 {
		page = DefaultPage
	}
	switch {
	case perPage == 0:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	case perPage < MinPerPage:
		perPage = MinPerPage
	}
	// keeps page*perPage, and so Offset, inside an int; such a page is
	// past any real data and comes back empty
	if maxPage := math.MaxInt / perPage; page > maxPage {
		page = maxPage
	}
	return Params{Page: page, PerPage: perPage}
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Params) Limit() int {
	return p.PerPage
}

// Page is a single page of a listing.
type Page[T any] struct {
	Data    []T   `json:"data"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"perPage"`
}

func NewPage[T any](data []T, total int64, p Params) Page[T] {
	if data == nil {
		data = []T{}
	}
	return Page[T]{Data: data, Total: total, Page: p.Page, PerPage: p.PerPage}
}
