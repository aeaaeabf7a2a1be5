package service

import (
	"context"
	"log/slog"
	"strings"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

type CommentRequest struct {
	Body   *string `json:"body"`
	Author *string `json:"author"`
}

func (r CommentRequest) validate() (domain.NewComment, error) {
	if r.Body == nil || r.Author == nil || strings.TrimSpace(*r.Body) == "" || *r.Author == "" {
		return domain.NewComment{}, apperr.BadRequest("body and author are required")
	}
	return domain.NewComment{Body: *r.Body, Author: *r.Author}, nil
}

type CommentService struct {
	articles  ArticleStore
	comments  CommentStore
	txManager TransactionManager
	events    eventSink
	logger    *slog.Logger
}

func NewCommentService(
	articles ArticleStore,
	comments CommentStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
) *CommentService {
	logger = logger.With("component", "comments")
	return &CommentService{
		articles:  articles,
		comments:  comments,
		txManager: txManager,
		events:    eventSink{publisher: publisher, logger: logger},
		logger:    logger,
	}
}

func (s *CommentService) ListByArticle(ctx context.Context, token string) ([]domain.Comment, error) {
	return requireArticle(ctx, s.articles, token,
		func(ctx context.Context, article *domain.ArticleDetail) ([]domain.Comment, error) {
			return s.comments.ListByArticle(ctx, article.ArticleID)
		})
}

// Add checks the article, then the payload, then inserts, all in one
// transaction. An unknown author surfaces as NotFound(user) from the store.
func (s *CommentService) Add(ctx context.Context, token string, payload Binder) (*domain.Comment, error) {
	var comment *domain.Comment

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		comment, err = requireArticle(txCtx, s.articles, token,
			func(ctx context.Context, article *domain.ArticleDetail) (*domain.Comment, error) {
				var req CommentRequest
				if err := payload.Bind(&req); err != nil {
					return nil, apperr.BadRequest("body and author are required")
				}
				nc, err := req.validate()
				if err != nil {
					return nil, err
				}
				return s.comments.Insert(ctx, article.ArticleID, nc)
			})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.events.emit(ctx, domain.Event{
		Action:    domain.ActionCommentCreated,
		ArticleID: comment.ArticleID,
		CommentID: comment.CommentID,
		Payload:   comment,
	})

	return comment, nil
}

func (s *CommentService) Delete(ctx context.Context, token string) error {
	id, err := ParseID(token)
	if err != nil {
		return err
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.events.emit(ctx, domain.Event{
		Action:    domain.ActionCommentDeleted,
		CommentID: id,
	})
	return nil
}
