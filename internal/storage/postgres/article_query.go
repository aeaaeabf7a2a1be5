package postgres

import (
	"strings"

	"news_api/internal/domain"
)

var sortColumns = map[domain.SortField]string{
	domain.SortByArticleID:     "a.article_id",
	domain.SortByTitle:         "a.title",
	domain.SortByTopic:         "a.topic",
	domain.SortByAuthor:        "a.author",
	domain.SortByBody:          "a.body",
	domain.SortByCreatedAt:     "a.created_at",
	domain.SortByVotes:         "a.votes",
	domain.SortByArticleImgURL: "a.article_img_url",
	domain.SortByCommentCount:  "comment_count",
}

const listArticlesSelect = `
		SELECT
			a.article_id, a.title, a.topic, a.author, a.created_at, a.votes, a.article_img_url,
			COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id`

// buildListArticlesQuery composes the articles collection query. Identifiers
// come only from sortColumns; the topic is always a bind parameter.
func buildListArticlesQuery(f domain.ArticleFilter) (string, []any) {
	column, ok := sortColumns[f.SortBy]
	if !ok {
		column = sortColumns[domain.SortByCreatedAt]
	}
	direction := "DESC"
	if f.Order == domain.OrderAsc {
		direction = "ASC"
	}

	var sb strings.Builder
	var args []any

	sb.WriteString(listArticlesSelect)
	if f.Topic != "" {
		args = append(args, f.Topic)
		sb.WriteString("\n\t\tWHERE a.topic = $1")
	}
	sb.WriteString("\n\t\tGROUP BY a.article_id")
	sb.WriteString("\n\t\tORDER BY ")
	sb.WriteString(column)
	sb.WriteString(" ")
	sb.WriteString(direction)
	if f.SortBy != domain.SortByArticleID {
		sb.WriteString(", a.article_id ")
		sb.WriteString(direction)
	}

	return sb.String(), args
}
