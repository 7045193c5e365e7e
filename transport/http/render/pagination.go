package render

import (
	"net/url"
	"strconv"
)

// Pagination feeds the shared pagination partial. Prev and next links keep
// the caller's query string, so an applied filter survives paging.
type Pagination struct {
	Page      int
	TotalPage int
	PrevURL   string
	NextURL   string
}

func NewPagination(page, totalPage int, base string, query url.Values) Pagination {
	return Pagination{
		Page:      page,
		TotalPage: totalPage,
		PrevURL:   pageURL(base, query, page-1),
		NextURL:   pageURL(base, query, page+1),
	}
}

func pageURL(base string, query url.Values, page int) string {
	values := url.Values{}
	for key, value := range query {
		values[key] = value
	}

	values.Set("page", strconv.Itoa(page))

	return base + "?" + values.Encode()
}
