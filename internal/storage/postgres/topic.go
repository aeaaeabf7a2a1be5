package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

type TopicStore struct {
	db *sqlx.DB
}

func NewTopicStore(db *sqlx.DB) *TopicStore {
	return &TopicStore{db: db}
}

func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	topics := []domain.Topic{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &topics, "SELECT slug, description FROM topics ORDER BY slug")
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", classify(err, apperr.ResourceTopic))
	}
	return topics, nil
}

func (s *TopicStore) Exists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM topics WHERE slug = $1)", slug)
	if err != nil {
		return false, classify(err, apperr.ResourceTopic)
	}
	return exists, nil
}
