package resources

import (
	"net/url"
	"strconv"
)

type PageLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
}

type PageMeta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

// NewPage computes pagination metadata for a page holding count rows. Links keep
// every query parameter of u except page.
func NewPage(u *url.URL, page, perPage, count int, total int64) (PageLinks, PageMeta) {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	base := *u
	base.RawQuery = ""
	base.Fragment = ""
	path := base.String()

	pageURL := func(n int) string {
		q := u.Query()
		q.Set("page", strconv.Itoa(n))
		return path + "?" + q.Encode()
	}

	meta := PageMeta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}
	if count > 0 {
		from := (page-1)*perPage + 1
		to := from + count - 1
		meta.From = &from
		meta.To = &to
	}

	links := PageLinks{
		First: pageURL(1),
		Last:  pageURL(lastPage),
	}
	if page > 1 {
		prev := pageURL(page - 1)
		links.Prev = &prev
	}
	if page < lastPage {
		next := pageURL(page + 1)
		links.Next = &next
	}

	return links, meta
}
