package utils

import "strconv"

// Page is one slice of an ordered listing. Invalid page numbers fall back
// to the first page, out-of-range ones clamp to the last page.
type Page struct {
	Number   int
	PerPage  int
	Total    int64
	NumPages int
}

func NewPage(pageParam string, total int64, perPage int) Page {
	number, err := strconv.Atoi(pageParam)
	if err != nil || number < 1 {
		number = 1
	}
	numPages := int((total + int64(perPage) - 1) / int64(perPage))
	if numPages < 1 {
		numPages = 1
	}
	if number > numPages {
		number = numPages
	}
	return Page{
		Number:   number,
		PerPage:  perPage,
		Total:    total,
		NumPages: numPages,
	}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

func (p Page) HasPrev() bool {
	return p.Number > 1
}

func (p Page) HasNext() bool {
	return p.Number < p.NumPages
}

func (p Page) PrevNumber() int {
	return p.Number - 1
}

func (p Page) NextNumber() int {
	return p.Number + 1
}
