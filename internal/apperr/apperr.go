// Package apperr defines the closed set of error kinds the API can return.
//
// Every failure that leaves the service layer is an [*Error]. The HTTP layer
// maps its Kind to a status code and renders Message; Cause is only logged.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// HTTPStatus returns the response status for the kind.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Resource names the entity a NotFound error refers to.
type Resource string

const (
	ResourceArticle Resource = "article"
	ResourceComment Resource = "comment"
	ResourceTopic   Resource = "topic"
	ResourceUser    Resource = "user"
)

type Error struct {
	Kind     Kind
	Resource Resource
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches errors of the same kind and resource, so callers can write
// errors.Is(err, apperr.NotFound(apperr.ResourceUser)).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Resource == t.Resource
}

func BadRequest(msg string) *Error {
	if msg == "" {
		msg = "Bad request"
	}
	return &Error{Kind: KindBadRequest, Message: msg}
}

func NotFound(r Resource) *Error {
	name := string(r)
	if name == "" {
		name = "resource"
	}
	return &Error{
		Kind:     KindNotFound,
		Resource: r,
		Message:  strings.ToUpper(name[:1]) + name[1:] + " not found",
	}
}

// Internal wraps an unexpected failure. Its message is safe to return to clients.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Cause: cause}
}

// From returns err as an *Error, classifying anything unknown as internal.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return Internal(err)
}

func IsKind(err error, k Kind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == k
}
