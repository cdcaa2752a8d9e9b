package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type storeRepoPG struct{ pool *pgxpool.Pool }

func NewStoreRepoPG(pool *pgxpool.Pool) StoreRepository {
	return &storeRepoPG{pool: pool}
}

func (r *storeRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

const storeCols = `id, medication, user_id, production_date, expiration_date,
	lot_number, quantity, unit, active, created, updated`

// Columns returns the store column list qualified with alias.
func Columns(alias string) string {
	p := alias + "."
	return p + "id, " + p + "medication, " + p + "user_id, " + p + "production_date, " +
		p + "expiration_date, " + p + "lot_number, " + p + "quantity, " + p + "unit, " +
		p + "active, " + p + "created, " + p + "updated"
}

// Scan reads a row selected with Columns.
func Scan(row pgx.Row) (*Store, error) {
	var s Store
	err := row.Scan(&s.ID, &s.Medication, &s.User, &s.ProductionDate, &s.ExpirationDate,
		&s.LotNumber, &s.Quantity, &s.Unit, &s.Active, &s.Created, &s.Updated)
	return &s, err
}

func scanOne(row pgx.Row, convert func(error) error) (*Store, error) {
	s, err := Scan(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return s, nil
}

func storageError(err error) error { return apperr.Storage(err) }

func (r *storeRepoPG) Create(ctx context.Context, s *Store) error {
	var production *time.Time
	if !s.ProductionDate.IsZero() {
		production = &s.ProductionDate
	}
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO store (medication, user_id, production_date, expiration_date,
			lot_number, quantity, unit, active)
		VALUES ($1, $2, COALESCE($3::timestamptz, NOW()), $4, $5, $6, $7, $8)
		RETURNING `+storeCols,
		s.Medication, s.User, production, s.ExpirationDate,
		s.LotNumber, s.Quantity, s.Unit, s.Active)
	created, err := Scan(row)
	if err != nil {
		return db.WriteError(err)
	}
	*s = *created
	return nil
}

func (r *storeRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+storeCols+` FROM store WHERE id = $1`, id)
	return scanOne(row, storageError)
}

func (r *storeRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*Store, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE store SET
			user_id = COALESCE($2, user_id),
			production_date = COALESCE($3, production_date),
			expiration_date = COALESCE($4, expiration_date),
			lot_number = COALESCE($5, lot_number),
			quantity = COALESCE($6, quantity),
			unit = COALESCE($7, unit),
			active = COALESCE($8, active),
			updated = NOW()
		WHERE id = $1
		RETURNING `+storeCols,
		id, p.User, p.ProductionDate, p.ExpirationDate, p.LotNumber, p.Quantity, p.Unit, p.Active)
	return scanOne(row, db.WriteError)
}

// Delete removes the lot and its notes. Doses drawn from it make the delete
// fail.
func (r *storeRepoPG) Delete(ctx context.Context, id uuid.UUID) (*Store, error) {
	var removed *Store
	err := db.DeleteNoted(ctx, r.pool, "store", id, func(ctx context.Context, q db.Queryable) error {
		var err error
		removed, err = scanOne(q.QueryRow(ctx, `DELETE FROM store WHERE id = $1 RETURNING `+storeCols, id), db.DeleteError)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *storeRepoPG) List(ctx context.Context) ([]*Store, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+storeCols+` FROM store ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return CollectRows(rows)
}

// CollectRows scans every row selected with Columns and closes rows.
func CollectRows(rows pgx.Rows) ([]*Store, error) {
	defer rows.Close()
	items := []*Store{}
	for rows.Next() {
		s, err := Scan(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func (r *storeRepoPG) Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Store, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE store SET active = FALSE, updated = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR user_id = $2)
		RETURNING `+storeCols,
		id, user)
	return scanOne(row, db.WriteError)
}
