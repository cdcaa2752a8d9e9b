// Package apperr defines the error kinds returned by services and repositories
// and how each kind is rendered over HTTP.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

type Kind int

const (
	KindUnauthorized Kind = iota + 1
	KindForbidden
	KindNotFound
	KindBadRequest
	KindValidation
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindBadRequest:
		return "bad_request"
	case KindValidation:
		return "validation"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// FieldErrors maps a request field name to the problems found with it.
type FieldErrors map[string][]string

// Add appends msg to the messages recorded for field.
func (f FieldErrors) Add(field, msg string) {
	f[field] = append(f[field], msg)
}

// Err returns a validation error carrying f, or nil when nothing was recorded.
func (f FieldErrors) Err() error {
	if len(f) == 0 {
		return nil
	}
	return &Error{Kind: KindValidation, Message: "error in the request body", Fields: f}
}

type Error struct {
	Kind    Kind
	Message string
	Fields  FieldErrors
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "; %s: %s", k, strings.Join(e.Fields[k], ", "))
		}
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Unauthorized() *Error {
	return &Error{Kind: KindUnauthorized, Message: "authentication required"}
}

func Forbidden() *Error {
	return &Error{Kind: KindForbidden, Message: "user may not perform that action"}
}

func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "request path not found"}
}

func BadRequest(msg string) *Error {
	return &Error{Kind: KindBadRequest, Message: msg}
}

// Validation returns a validation error for a single field.
func Validation(field, msg string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "error in the request body",
		Fields:  FieldErrors{field: {msg}},
	}
}

// Storage wraps a failure of the underlying store. The wrapped error is only
// ever logged, never sent to the client.
func Storage(err error) *Error {
	return &Error{Kind: KindStorage, Message: "database error", Err: err}
}

// KindOf reports the kind of err, or KindStorage when err does not carry one.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStorage
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
