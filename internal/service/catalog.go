package service

import (
	"context"

	"news_api/internal/domain"
)

// CatalogService serves the read-only reference data: topics and users.
type CatalogService struct {
	topics TopicStore
	users  UserStore
}

func NewCatalogService(topics TopicStore, users UserStore) *CatalogService {
	return &CatalogService{topics: topics, users: users}
}

func (s *CatalogService) Topics(ctx context.Context) ([]domain.Topic, error) {
	return s.topics.List(ctx)
}

func (s *CatalogService) Users(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}
