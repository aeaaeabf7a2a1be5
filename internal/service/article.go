package service

import (
	"context"
	"log/slog"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

// ListArticlesParams carries raw query-string values. Empty means absent.
type ListArticlesParams struct {
	SortBy string
	Order  string
	Topic  string
}

type VoteRequest struct {
	IncVotes *int `json:"inc_votes"`
}

type ArticleService struct {
	articles ArticleStore
	topics   TopicStore
	events   eventSink
	logger   *slog.Logger
}

func NewArticleService(articles ArticleStore, topics TopicStore, publisher Publisher, logger *slog.Logger) *ArticleService {
	logger = logger.With("component", "articles")
	return &ArticleService{
		articles: articles,
		topics:   topics,
		events:   eventSink{publisher: publisher, logger: logger},
		logger:   logger,
	}
}

func (s *ArticleService) Get(ctx context.Context, token string) (*domain.ArticleDetail, error) {
	return requireArticle(ctx, s.articles, token,
		func(_ context.Context, article *domain.ArticleDetail) (*domain.ArticleDetail, error) {
			return article, nil
		})
}

// ParseArticleFilter validates sort_by and order without touching the store.
func ParseArticleFilter(p ListArticlesParams) (domain.ArticleFilter, error) {
	filter := domain.ArticleFilter{Topic: p.Topic}

	if p.SortBy != "" {
		field, ok := domain.ParseSortField(p.SortBy)
		if !ok {
			return filter, apperr.BadRequest("Invalid sort_by query")
		}
		filter.SortBy = field
	}

	if p.Order != "" {
		order, ok := domain.ParseSortOrder(p.Order)
		if !ok {
			return filter, apperr.BadRequest("Invalid order query")
		}
		filter.Order = order
	}

	return filter, nil
}

func (s *ArticleService) List(ctx context.Context, p ListArticlesParams) ([]domain.ArticleSummary, error) {
	filter, err := ParseArticleFilter(p)
	if err != nil {
		return nil, err
	}

	if filter.Topic != "" {
		if err := s.requireTopic(ctx, filter.Topic); err != nil {
			return nil, err
		}
	}

	return s.articles.List(ctx, filter)
}

func (s *ArticleService) requireTopic(ctx context.Context, slug string) error {
	exists, err := s.topics.Exists(ctx, slug)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound(apperr.ResourceTopic)
	}
	return nil
}

// AdjustVotes adds inc_votes to the article's vote count. The result omits
// comment_count.
func (s *ArticleService) AdjustVotes(ctx context.Context, token string, payload Binder) (*domain.Article, error) {
	article, err := requireArticle(ctx, s.articles, token,
		func(ctx context.Context, current *domain.ArticleDetail) (*domain.Article, error) {
			var req VoteRequest
			if err := payload.Bind(&req); err != nil || req.IncVotes == nil {
				return nil, apperr.BadRequest("inc_votes must be an integer")
			}
			return s.articles.IncrementVotes(ctx, current.ArticleID, *req.IncVotes)
		})
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.Event{
		Action:    domain.ActionArticleVoted,
		ArticleID: article.ArticleID,
		Payload:   article,
	})

	return article, nil
}
