package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name        string
		page        string
		perPage     string
		wantPage    int
		wantPerPage int
	}{
		{"defaults on empty", "", "", 1, 15},
		{"junk falls back", "abc", "-3", 1, 15},
		{"caps per page", "2", "500", 2, 100},
		{"explicit values", "3", "20", 3, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromQuery(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPerPage, p.PerPage)
		})
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)

	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)
	assert.Equal(t, 10, (&PaginationParams{Page: 2, PerPage: 10}).Offset())
}

func TestNewPaginatedResult_NilItemsBecomeEmpty(t *testing.T) {
	r := NewPaginatedResult[int](nil, NewPagination(1, 15, 0))

	assert.NotNil(t, r.Items)
	assert.Empty(t, r.Items)
}
