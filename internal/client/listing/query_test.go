package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery_Values(t *testing.T) {
	tests := []struct {
		name string
		q    Query
		want string
	}{
		{"full", Query{Page: 2, Limit: 25, SortField: "name", SortDirection: Ascending, Search: "budi"},
			"limit=25&order_by=name&page=2&search=budi&sort_by=asc"},
		{"no search", Query{Page: 1, Limit: 10, SortField: "created_at", SortDirection: Descending},
			"limit=10&order_by=created_at&page=1&sort_by=desc"},
		{"blank search dropped", Query{Page: 1, Limit: 10, Search: "   "},
			"limit=10&page=1"},
		{"empty", Query{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.Values().Encode())
		})
	}
}

func TestNewQuery_Defaults(t *testing.T) {
	q := NewQuery(7, "id")
	assert.Equal(t, Query{Page: 1, Limit: DefaultLimit, SortField: "id", SortDirection: Descending}, q)

	q = NewQuery(50, "name")
	assert.Equal(t, 50, q.Limit)
}

func TestParseLimit(t *testing.T) {
	for _, s := range []string{"10", "25", " 50 ", "100"} {
		_, err := ParseLimit(s)
		require.NoError(t, err, s)
	}
	for _, s := range []string{"0", "11", "-10", "abc", ""} {
		_, err := ParseLimit(s)
		require.ErrorIs(t, err, ErrInvalidLimit, s)
	}
}

func TestDirection_Toggle(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
	assert.Equal(t, Ascending, Direction("").Toggle())
}
