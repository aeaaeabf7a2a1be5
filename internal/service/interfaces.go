package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_api/internal/domain"
)

type ArticleStore interface {
	GetByID(ctx context.Context, id int64) (*domain.ArticleDetail, error)
	List(ctx context.Context, filter domain.ArticleFilter) ([]domain.ArticleSummary, error)
	IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

type CommentStore interface {
	ListByArticle(ctx context.Context, articleID int64) ([]domain.Comment, error)
	Insert(ctx context.Context, articleID int64, comment domain.NewComment) (*domain.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type TopicStore interface {
	List(ctx context.Context) ([]domain.Topic, error)
	Exists(ctx context.Context, slug string) (bool, error)
}

type UserStore interface {
	List(ctx context.Context) ([]domain.User, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event domain.Event) error
	Close() error
}

// Binder decodes a request payload into dst. Implementations must reject
// unknown keys and values of the wrong JSON type.
type Binder interface {
	Bind(dst any) error
}
