package listing

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// DefaultLimit is the page size used until the operator picks another one.
const DefaultLimit = 10

// AllowedLimits are the page sizes offered by every list screen.
var AllowedLimits = []int{10, 25, 50, 100}

var ErrInvalidLimit = errors.New("invalid page limit")

type Query struct {
	Page          int
	Limit         int
	SortField     string
	SortDirection Direction
	Search        string
}

// NewQuery returns page 1 sorted by sortField, descending.
func NewQuery(limit int, sortField string) Query {
	if !ValidLimit(limit) {
		limit = DefaultLimit
	}
	return Query{Page: 1, Limit: limit, SortField: sortField, SortDirection: Descending}
}

func ValidLimit(n int) bool {
	return slices.Contains(AllowedLimits, n)
}

// ParseLimit converts user input into an allowed page size.
func ParseLimit(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !ValidLimit(n) {
		return 0, fmt.Errorf("%w: %q (allowed %v)", ErrInvalidLimit, s, AllowedLimits)
	}
	return n, nil
}

// Values renders the query string. Empty and zero parameters are left out.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.SortField != "" {
		v.Set("order_by", q.SortField)
	}
	if q.SortDirection != "" {
		v.Set("sort_by", string(q.SortDirection))
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	return v
}

func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}
