// Package pagination turns the loosely specified paging arguments accepted by
// list tools into the canonical query parameters the platform API expects.
package pagination

import (
	"net/url"
	"sort"
	"strconv"
)

const (
	KeyPage    = "page"
	KeyPerPage = "perPage"
	KeyOffset  = "offset"
	KeyLimit   = "limit"
)

// Request is the paging input a caller may supply. Every field is optional
// and callers are free to mix page/perPage and offset/limit styles.
type Request struct {
	Page    *int `json:"page,omitempty"`
	PerPage *int `json:"perPage,omitempty"`
	Offset  *int `json:"offset,omitempty"`
	Limit   *int `json:"limit,omitempty"`
}

// Params holds at most one page indicator (page or offset) and at most one
// size indicator (perPage or limit).
type Params map[string]int

// Normalize resolves req into Params. page wins over offset and perPage wins
// over limit; the losing field is dropped, not merged. Values are passed
// through without bounds checks.
func Normalize(req *Request) Params {
	params := Params{}
	if req == nil {
		return params
	}

	switch {
	case req.Page != nil:
		params[KeyPage] = *req.Page
	case req.Offset != nil:
		params[KeyOffset] = *req.Offset
	}

	switch {
	case req.PerPage != nil:
		params[KeyPerPage] = *req.PerPage
	case req.Limit != nil:
		params[KeyLimit] = *req.Limit
	}

	return params
}

// Values renders p as query parameters.
func (p Params) Values() url.Values {
	values := url.Values{}
	p.Apply(values)
	return values
}

// Apply sets every parameter of p on values, overwriting existing entries.
func (p Params) Apply(values url.Values) {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		values.Set(k, strconv.Itoa(p[k]))
	}
}
