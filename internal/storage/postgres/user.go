package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"news_api/internal/apperr"
	"news_api/internal/domain"
)

type UserStore struct {
	db *sqlx.DB
}

func NewUserStore(db *sqlx.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	users := []domain.User{}
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &users,
		"SELECT username, name, avatar_url FROM users ORDER BY username")
	if err != nil {
		return nil, fmt.Errorf("list users: %w", classify(err, apperr.ResourceUser))
	}
	return users, nil
}
