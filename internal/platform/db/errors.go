package db

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

// IsNoRows reports whether err means a single-row statement matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// WriteError converts an error from an INSERT or UPDATE. Constraint
// violations become validation errors on the column the constraint guards;
// everything else is a storage error.
func WriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return apperr.Storage(err)
	}

	field := constraintField(pgErr.ConstraintName)
	switch pgErr.Code {
	case codeForeignKeyViolation:
		return apperr.Validation(field, "refers to a record that does not exist")
	case codeUniqueViolation:
		return apperr.Validation(field, "is already taken")
	case codeCheckViolation:
		return apperr.Validation(field, "is not valid")
	case codeInvalidText:
		return apperr.Validation("body", "contains a malformed value")
	}
	return apperr.Storage(err)
}

// DeleteError converts an error from a DELETE. A foreign key violation means
// other rows still point at the one being removed.
func DeleteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation {
		return apperr.Validation("id", "is still referenced by other records")
	}
	return apperr.Storage(err)
}

// constraintField extracts the column from a constraint named
// <table>_<column>_<suffix>, e.g. dose_store_fkey -> store.
func constraintField(name string) string {
	_, rest, ok := strings.Cut(name, "_")
	if !ok {
		return "body"
	}
	for _, suffix := range []string{"_fkey", "_check", "_key"} {
		if strings.HasSuffix(rest, suffix) {
			return strings.TrimSuffix(rest, suffix)
		}
	}
	return rest
}
