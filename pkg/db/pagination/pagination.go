package pagination

import (
	"fmt"
	"net/url"
	"strconv"
)

// Link is one entry of the pager control rendered under a listing.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Page is an offset-paginated result set with the metadata the frontend needs
// to re-query: 1-indexed page numbers and prev/numbered/next links echoing the
// current query string.
type Page[T any] struct {
	Data        []T    `json:"data"`
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int64  `json:"total"`
	Links       []Link `json:"links"`
}

// New assembles a Page from an already-sliced data window. A page past the end
// keeps its requested number and an empty data set; total is preserved so the
// caller can still render the pager.
func New[T any](data []T, total int64, page, perPage int, basePath string, query url.Values) Page[T] {
	if data == nil {
		data = []T{}
	}
	lastPage := LastPage(total, perPage)

	return Page[T]{
		Data:        data,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     perPage,
		Total:       total,
		Links:       buildLinks(page, lastPage, basePath, query),
	}
}

// LastPage returns the number of the final page; never below 1 so an empty
// result still has a valid page range.
func LastPage(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}
	return last
}

// Offset converts a 1-indexed page number into a row offset.
func Offset(page, perPage int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * perPage
}

func buildLinks(page, lastPage int, basePath string, query url.Values) []Link {
	links := make([]Link, 0, lastPage+2)

	var prev *string
	if page > 1 {
		prev = pageURL(basePath, query, page-1)
	}
	links = append(links, Link{URL: prev, Label: "&laquo; Previous"})

	for n := 1; n <= lastPage; n++ {
		links = append(links, Link{
			URL:    pageURL(basePath, query, n),
			Label:  strconv.Itoa(n),
			Active: n == page,
		})
	}

	var next *string
	if page < lastPage {
		next = pageURL(basePath, query, page+1)
	}
	links = append(links, Link{URL: next, Label: "Next &raquo;"})

	return links
}

func pageURL(basePath string, query url.Values, page int) *string {
	values := url.Values{}
	for key, vals := range query {
		for _, v := range vals {
			values.Add(key, v)
		}
	}
	values.Set("page", strconv.Itoa(page))
	u := fmt.Sprintf("%s?%s", basePath, values.Encode())
	return &u
}
