package service

import (
	"context"
	"strconv"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

// ParseID parses an identifier taken from a path segment. Identifiers are
// SERIAL columns, so anything outside the int32 range is malformed.
func ParseID(token string) (int64, error) {
	id, err := strconv.ParseInt(token, 10, 32)
	if err != nil {
		return 0, apperr.BadRequest("Bad request")
	}
	return id, nil
}

// requireArticle resolves token to an existing article and only then runs fn.
// Parse and lookup failures are returned unchanged.
func requireArticle[T any](
	ctx context.Context,
	articles ArticleStore,
	token string,
	fn func(ctx context.Context, article *domain.ArticleDetail) (T, error),
) (T, error) {
	var zero T

	id, err := ParseID(token)
	if err != nil {
		return zero, err
	}

	article, err := articles.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	return fn(ctx, article)
}
