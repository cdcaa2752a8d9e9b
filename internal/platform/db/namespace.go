package db

import (
	"context"
	"fmt"
	"io/fs"
	"regexp"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var namespacePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]{0,62}$`)

// ValidNamespace reports whether name can be used as a Postgres schema name
// without quoting surprises.
func ValidNamespace(name string) bool {
	return namespacePattern.MatchString(name)
}

// CreateNamespace creates the schema if needed and, when migrations is not
// nil, brings it up to date.
func CreateNamespace(ctx context.Context, pool *pgxpool.Pool, namespace string, migrations fs.FS) error {
	if !ValidNamespace(namespace) {
		return fmt.Errorf("invalid namespace: %q", namespace)
	}

	_, err := pool.Exec(ctx, "CREATE SCHEMA IF NOT EXISTS "+pgx.Identifier{namespace}.Sanitize())
	if err != nil {
		return fmt.Errorf("create schema %s: %w", namespace, err)
	}

	if migrations != nil {
		if _, err := NewMigrator(pool, migrations).Up(ctx, namespace); err != nil {
			return fmt.Errorf("run migrations for %s: %w", namespace, err)
		}
	}
	return nil
}
