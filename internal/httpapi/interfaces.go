package httpapi

import (
	"context"

	"news_api/internal/domain"
	"news_api/internal/service"
)

type ArticleService interface {
	Get(ctx context.Context, token string) (*domain.ArticleDetail, error)
	List(ctx context.Context, params service.ListArticlesParams) ([]domain.ArticleSummary, error)
	AdjustVotes(ctx context.Context, token string, payload service.Binder) (*domain.Article, error)
}

type CommentService interface {
	ListByArticle(ctx context.Context, token string) ([]domain.Comment, error)
	Add(ctx context.Context, token string, payload service.Binder) (*domain.Comment, error)
	Delete(ctx context.Context, token string) error
}

type CatalogService interface {
	Topics(ctx context.Context) ([]domain.Topic, error)
	Users(ctx context.Context) ([]domain.User, error)
}

// Pinger reports whether the database is reachable. *sqlx.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}
