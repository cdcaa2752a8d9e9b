package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewPool opens a connection pool whose sessions resolve unqualified table
// names in namespace first.
func NewPool(ctx context.Context, databaseURL, namespace string, maxConns, minConns int32) (*pgxpool.Pool, error) {
	if !ValidNamespace(namespace) {
		return nil, fmt.Errorf("invalid namespace: %q", namespace)
	}

	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.ConnConfig.RuntimeParams["search_path"] = searchPath(namespace)

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func searchPath(namespace string) string {
	return pgx.Identifier{namespace}.Sanitize() + ", public"
}
