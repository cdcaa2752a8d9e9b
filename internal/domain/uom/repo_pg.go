package uom

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type uomRepoPG struct{ pool *pgxpool.Pool }

func NewUOMRepoPG(pool *pgxpool.Pool) UOMRepository {
	return &uomRepoPG{pool: pool}
}

func (r *uomRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

const uomCols = `id, name, abbreviation, active, created, updated`

func scanUOM(row pgx.Row) (*UOM, error) {
	var u UOM
	err := row.Scan(&u.ID, &u.Name, &u.Abbreviation, &u.Active, &u.Created, &u.Updated)
	return &u, err
}

// one scans a single-row result, mapping "no row" to a nil record.
func one(row pgx.Row, convert func(error) error) (*UOM, error) {
	u, err := scanUOM(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return u, nil
}

func storageError(err error) error { return apperr.Storage(err) }

func (r *uomRepoPG) Create(ctx context.Context, u *UOM) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO uom (name, abbreviation, active)
		VALUES ($1, $2, $3)
		RETURNING `+uomCols,
		u.Name, u.Abbreviation, u.Active)
	created, err := scanUOM(row)
	if err != nil {
		return db.WriteError(err)
	}
	*u = *created
	return nil
}

func (r *uomRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*UOM, error) {
	return one(r.conn(ctx).QueryRow(ctx, `SELECT `+uomCols+` FROM uom WHERE id = $1`, id), storageError)
}

func (r *uomRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*UOM, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE uom SET
			name = COALESCE($2, name),
			abbreviation = COALESCE($3, abbreviation),
			active = COALESCE($4, active),
			updated = NOW()
		WHERE id = $1
		RETURNING `+uomCols,
		id, p.Name, p.Abbreviation, p.Active)
	return one(row, db.WriteError)
}

// Delete removes the unit along with any notes attached to it.
func (r *uomRepoPG) Delete(ctx context.Context, id uuid.UUID) (*UOM, error) {
	var removed *UOM
	err := db.DeleteNoted(ctx, r.pool, "uom", id, func(ctx context.Context, q db.Queryable) error {
		var err error
		removed, err = one(q.QueryRow(ctx, `DELETE FROM uom WHERE id = $1 RETURNING `+uomCols, id), db.DeleteError)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *uomRepoPG) List(ctx context.Context) ([]*UOM, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+uomCols+` FROM uom ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []*UOM{}
	for rows.Next() {
		u, err := scanUOM(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func (r *uomRepoPG) Deactivate(ctx context.Context, id uuid.UUID) (*UOM, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE uom SET active = FALSE, updated = NOW()
		WHERE id = $1
		RETURNING `+uomCols, id)
	return one(row, db.WriteError)
}
