package service

import (
	"context"
	"log/slog"

	"news_api/internal/domain"
)

// eventSink publishes after a mutation has been committed. A failed publish is
// logged and never reported to the caller.
type eventSink struct {
	publisher Publisher
	logger    *slog.Logger
}

func (e eventSink) emit(ctx context.Context, event domain.Event) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Publish(ctx, event); err != nil {
		e.logger.Warn("failed to publish event",
			"action", event.Action,
			"article_id", event.ArticleID,
			"comment_id", event.CommentID,
			"error", err,
		)
	}
}
