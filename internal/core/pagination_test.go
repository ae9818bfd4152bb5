// AngelaMos | 2026
// pagination_test.go

package core

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePageParams(t *testing.T) {
	tests := []struct {
		query string
		want  PageParams
	}{
		{"", PageParams{Page: 1, Limit: 0}},
		{"?page=3&limit=10", PageParams{Page: 3, Limit: 10}},
		{"?page=0&limit=5", PageParams{Page: 1, Limit: 5}},
		{"?page=abc&limit=-4", PageParams{Page: 1, Limit: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/"+tt.query, nil)
			assert.Equal(t, tt.want, ParsePageParams(r))
		})
	}
}

func TestNewPagination(t *testing.T) {
	t.Run("unpaginated returns everything on one page", func(t *testing.T) {
		p := NewPagination(PageParams{Page: 1}, 42)
		assert.Equal(t, Pagination{Total: 42, Page: 1, Limit: 42, Pages: 1}, p)
	})

	t.Run("pages round up", func(t *testing.T) {
		p := NewPagination(PageParams{Page: 2, Limit: 10}, 21)
		assert.Equal(t, Pagination{Total: 21, Page: 2, Limit: 10, Pages: 3}, p)
	})

	t.Run("empty collection", func(t *testing.T) {
		p := NewPagination(PageParams{Page: 1, Limit: 10}, 0)
		assert.Equal(t, 0, p.Pages)
	})
}

func TestPageParamsOffset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 4}.Offset())
	assert.Equal(t, 30, PageParams{Page: 4, Limit: 10}.Offset())
}

func TestParseBoolQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?on=true&off=false&junk=maybe", nil)

	on := ParseBoolQuery(r, "on")
	require.NotNil(t, on)
	assert.True(t, *on)

	off := ParseBoolQuery(r, "off")
	require.NotNil(t, off)
	assert.False(t, *off)

	assert.Nil(t, ParseBoolQuery(r, "junk"))
	assert.Nil(t, ParseBoolQuery(r, "missing"))
}
