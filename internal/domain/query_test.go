package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSortField(t *testing.T) {
	for name, want := range sortFieldNames {
		got, ok := ParseSortField(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	for _, bad := range []string{"", "CREATED_AT", "bananas", "votes;DROP TABLE articles", "comment_count "} {
		_, ok := ParseSortField(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
		ok   bool
	}{
		{"asc", OrderAsc, true},
		{"ASC", OrderAsc, true},
		{"Desc", OrderDesc, true},
		{"desc", OrderDesc, true},
		{"up", OrderDesc, false},
		{"", OrderDesc, false},
	}

	for _, tt := range tests {
		got, ok := ParseSortOrder(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		if ok {
			assert.Equal(t, tt.want, got, tt.in)
		}
	}
}

func TestArticleFilter_ZeroValueDefaults(t *testing.T) {
	var f ArticleFilter
	assert.Equal(t, SortByCreatedAt, f.SortBy)
	assert.Equal(t, OrderDesc, f.Order)
	assert.Empty(t, f.Topic)
}
