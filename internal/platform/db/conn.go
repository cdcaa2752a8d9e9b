package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Queryable is the subset of pgx shared by pools and transactions.
// Repositories issue every statement through it.
type Queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type contextKey string

const txKey contextKey = "db_tx"

func ContextWithTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// TxFromContext retrieves the transaction bound to ctx, if any.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}

// Conn picks what a statement should run on: the transaction in ctx, or the
// pool itself.
func Conn(ctx context.Context, pool *pgxpool.Pool) Queryable {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return pool
}

// WithTx runs fn inside a transaction carried by the context passed to it.
// The transaction commits when fn returns nil and rolls back otherwise. When
// ctx already carries a transaction fn joins it.
func WithTx(ctx context.Context, pool *pgxpool.Pool, fn func(ctx context.Context) error) error {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(ContextWithTx(ctx, tx)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// DeleteNoted deletes a record together with the notes that target it. table
// is both the record's table and its note target kind. The row is locked
// before the notes go, so a concurrent note insert (which takes FOR KEY SHARE
// on its target) either commits first and is removed here, or waits and then
// finds the target gone. del runs last, on the same transaction.
func DeleteNoted(ctx context.Context, pool *pgxpool.Pool, table string, id uuid.UUID,
	del func(ctx context.Context, q Queryable) error) error {
	err := WithTx(ctx, pool, func(ctx context.Context) error {
		q := Conn(ctx, pool)
		lock := `SELECT 1 FROM ` + pgx.Identifier{table}.Sanitize() + ` WHERE id = $1 FOR UPDATE`
		if _, err := q.Exec(ctx, lock, id); err != nil {
			return apperr.Storage(err)
		}
		if _, err := q.Exec(ctx, `DELETE FROM note WHERE target_kind = $1 AND target_id = $2`, table, id); err != nil {
			return apperr.Storage(err)
		}
		return del(ctx, q)
	})
	var appErr *apperr.Error
	if err != nil && !errors.As(err, &appErr) {
		return apperr.Storage(err)
	}
	return err
}
