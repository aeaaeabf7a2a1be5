package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

type CommentStore struct {
	db *sqlx.DB
}

func NewCommentStore(db *sqlx.DB) *CommentStore {
	return &CommentStore{db: db}
}

func (s *CommentStore) ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, body, article_id, author, votes, created_at
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC, comment_id DESC`

	comments := []domain.Comment{}
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &comments, query, articleID); err != nil {
		return nil, fmt.Errorf("list comments: %w", classify(err, apperr.ResourceComment))
	}
	return comments, nil
}

func (s *CommentStore) Insert(ctx context.Context, articleID int64, c domain.NewComment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (body, author, article_id)
		VALUES ($1, $2, $3)
		RETURNING comment_id, body, article_id, author, votes, created_at`

	var comment domain.Comment
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &comment, query, c.Body, c.Author, articleID); err != nil {
		return nil, classify(err, apperr.ResourceComment)
	}
	return &comment, nil
}

func (s *CommentStore) Delete(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return classify(err, apperr.ResourceComment)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return apperr.Internal(err)
	}
	if n == 0 {
		return apperr.NotFound(apperr.ResourceComment)
	}
	return nil
}
