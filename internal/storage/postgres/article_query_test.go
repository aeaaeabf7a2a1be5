package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"news_api/internal/domain"
)

func TestBuildListArticlesQuery_Defaults(t *testing.T) {
	query, args := buildListArticlesQuery(domain.ArticleFilter{})

	assert.Empty(t, args)
	assert.NotContains(t, query, "WHERE")
	assert.Contains(t, query, "LEFT JOIN comments")
	assert.Contains(t, query, "COUNT(c.comment_id)::INT AS comment_count")
	assert.Contains(t, query, "ORDER BY a.created_at DESC, a.article_id DESC")
	assert.NotContains(t, query, "a.body,")
}

func TestBuildListArticlesQuery_TopicIsBound(t *testing.T) {
	query, args := buildListArticlesQuery(domain.ArticleFilter{Topic: "cats'; DROP TABLE articles; --"})

	assert.Equal(t, []any{"cats'; DROP TABLE articles; --"}, args)
	assert.Contains(t, query, "WHERE a.topic = $1")
	assert.NotContains(t, query, "DROP TABLE")
}

func TestBuildListArticlesQuery_SortColumns(t *testing.T) {
	tests := []struct {
		filter domain.ArticleFilter
		order  string
	}{
		{domain.ArticleFilter{SortBy: domain.SortByTitle, Order: domain.OrderAsc}, "ORDER BY a.title ASC, a.article_id ASC"},
		{domain.ArticleFilter{SortBy: domain.SortByVotes}, "ORDER BY a.votes DESC, a.article_id DESC"},
		{domain.ArticleFilter{SortBy: domain.SortByCommentCount}, "ORDER BY comment_count DESC, a.article_id DESC"},
		{domain.ArticleFilter{SortBy: domain.SortByBody, Order: domain.OrderAsc}, "ORDER BY a.body ASC"},
		{domain.ArticleFilter{SortBy: domain.SortByArticleID, Order: domain.OrderAsc}, "ORDER BY a.article_id ASC"},
		{domain.ArticleFilter{SortBy: domain.SortField(99)}, "ORDER BY a.created_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.filter.SortBy.String()+"_"+tt.filter.Order.String(), func(t *testing.T) {
			query, _ := buildListArticlesQuery(tt.filter)
			assert.Contains(t, query, tt.order)
		})
	}
}

func TestSortColumns_CoverEveryField(t *testing.T) {
	fields := []domain.SortField{
		domain.SortByArticleID, domain.SortByTitle, domain.SortByTopic, domain.SortByAuthor,
		domain.SortByBody, domain.SortByCreatedAt, domain.SortByVotes,
		domain.SortByArticleImgURL, domain.SortByCommentCount,
	}
	for _, f := range fields {
		_, ok := sortColumns[f]
		assert.True(t, ok, f.String())
	}
}
