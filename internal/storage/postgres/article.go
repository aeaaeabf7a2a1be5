package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

func (s *ArticleStore) GetByID(ctx context.Context, id int64) (*domain.ArticleDetail, error) {
	query := `
		SELECT
			a.article_id, a.title, a.topic, a.author, a.body, a.created_at, a.votes, a.article_img_url,
			COUNT(c.comment_id)::INT AS comment_count
		FROM articles a
		LEFT JOIN comments c ON c.article_id = a.article_id
		WHERE a.article_id = $1
		GROUP BY a.article_id`

	var article domain.ArticleDetail
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, id); err != nil {
		return nil, classify(err, apperr.ResourceArticle)
	}
	return &article, nil
}

func (s *ArticleStore) List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleSummary, error) {
	query, args := buildListArticlesQuery(filter)

	articles := []domain.ArticleSummary{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &articles, query, args...); err != nil {
		return nil, fmt.Errorf("list articles: %w", classify(err, apperr.ResourceArticle))
	}
	return articles, nil
}

// IncrementVotes adds delta to the stored vote count in a single statement.
func (s *ArticleStore) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	query := `
		UPDATE articles SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url`

	var article domain.Article
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &article, query, delta, id); err != nil {
		return nil, classify(err, apperr.ResourceArticle)
	}
	return &article, nil
}
