package postgres

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/lib/pq"

	"news_api/internal/apperr"
)

// SQLSTATE codes the store translates into client errors.
const (
	codeForeignKeyViolation       = "23503"
	codeNotNullViolation          = "23502"
	codeInvalidTextRepresentation = "22P02"
	codeNumericValueOutOfRange    = "22003"
)

// classify translates a driver error into the apperr taxonomy. resource names
// the row the statement was looking for when it returns no rows.
func classify(err error, resource apperr.Resource) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return apperr.Internal(err)
	}

	switch string(pqErr.Code) {
	case codeForeignKeyViolation:
		e := apperr.NotFound(referencedResource(pqErr.Constraint, resource))
		e.Cause = err
		return e
	case codeInvalidTextRepresentation, codeNumericValueOutOfRange, codeNotNullViolation:
		e := apperr.BadRequest("")
		e.Cause = err
		return e
	default:
		return apperr.Internal(err)
	}
}

// referencedResource infers the missing parent row from the name of the
// violated foreign key, e.g. comments_author_fkey.
func referencedResource(constraint string, fallback apperr.Resource) apperr.Resource {
	switch {
	case strings.Contains(constraint, "author"):
		return apperr.ResourceUser
	case strings.Contains(constraint, "article_id"):
		return apperr.ResourceArticle
	case strings.Contains(constraint, "topic"):
		return apperr.ResourceTopic
	default:
		return fallback
	}
}
