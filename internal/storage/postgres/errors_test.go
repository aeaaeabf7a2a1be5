package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"news_api/internal/apperr"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		resource apperr.Resource
		kind     apperr.Kind
		want     apperr.Resource
	}{
		{
			name:     "no rows",
			err:      sql.ErrNoRows,
			resource: apperr.ResourceArticle,
			kind:     apperr.KindNotFound,
			want:     apperr.ResourceArticle,
		},
		{
			name:     "wrapped no rows",
			err:      fmt.Errorf("scan: %w", sql.ErrNoRows),
			resource: apperr.ResourceComment,
			kind:     apperr.KindNotFound,
			want:     apperr.ResourceComment,
		},
		{
			name:     "author foreign key",
			err:      &pq.Error{Code: "23503", Constraint: "comments_author_fkey"},
			resource: apperr.ResourceComment,
			kind:     apperr.KindNotFound,
			want:     apperr.ResourceUser,
		},
		{
			name:     "article foreign key",
			err:      &pq.Error{Code: "23503", Constraint: "comments_article_id_fkey"},
			resource: apperr.ResourceComment,
			kind:     apperr.KindNotFound,
			want:     apperr.ResourceArticle,
		},
		{
			name:     "topic foreign key",
			err:      &pq.Error{Code: "23503", Constraint: "articles_topic_fkey"},
			resource: apperr.ResourceArticle,
			kind:     apperr.KindNotFound,
			want:     apperr.ResourceTopic,
		},
		{
			name:     "invalid text representation",
			err:      &pq.Error{Code: "22P02"},
			resource: apperr.ResourceArticle,
			kind:     apperr.KindBadRequest,
		},
		{
			name:     "out of range",
			err:      &pq.Error{Code: "22003"},
			resource: apperr.ResourceArticle,
			kind:     apperr.KindBadRequest,
		},
		{
			name:     "not null",
			err:      &pq.Error{Code: "23502"},
			resource: apperr.ResourceComment,
			kind:     apperr.KindBadRequest,
		},
		{
			name:     "unique violation is internal",
			err:      &pq.Error{Code: "23505"},
			resource: apperr.ResourceComment,
			kind:     apperr.KindInternal,
		},
		{
			name:     "unknown error",
			err:      errors.New("connection reset"),
			resource: apperr.ResourceTopic,
			kind:     apperr.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := apperr.From(classify(tt.err, tt.resource))
			assert.Equal(t, tt.kind, got.Kind)
			if tt.kind == apperr.KindNotFound {
				assert.Equal(t, tt.want, got.Resource)
			}
		})
	}
}

func TestClassify_Nil(t *testing.T) {
	assert.NoError(t, classify(nil, apperr.ResourceArticle))
}
