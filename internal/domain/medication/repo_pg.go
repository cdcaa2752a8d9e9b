package medication

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type medicationRepoPG struct{ pool *pgxpool.Pool }

func NewMedicationRepoPG(pool *pgxpool.Pool) MedicationRepository {
	return &medicationRepoPG{pool: pool}
}

func (r *medicationRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

// Columns exposes the medication column list, prefixed with alias when one is
// given, so report queries select medications the same way.
func Columns(alias string) string {
	if alias == "" {
		return medCols
	}
	p := alias + "."
	return p + "id, " + p + "name, " + p + "user_id, " + p + "active, " + p + "created, " + p + "updated"
}

const medCols = `id, name, user_id, active, created, updated`

// Scan reads a row selected with Columns.
func Scan(row pgx.Row) (*Medication, error) {
	var m Medication
	err := row.Scan(&m.ID, &m.Name, &m.User, &m.Active, &m.Created, &m.Updated)
	return &m, err
}

func scanOne(row pgx.Row, convert func(error) error) (*Medication, error) {
	m, err := Scan(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return m, nil
}

func storageError(err error) error { return apperr.Storage(err) }

func (r *medicationRepoPG) Create(ctx context.Context, m *Medication) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medication (name, user_id, active)
		VALUES ($1, $2, $3)
		RETURNING `+medCols,
		m.Name, m.User, m.Active)
	created, err := Scan(row)
	if err != nil {
		return db.WriteError(err)
	}
	*m = *created
	return nil
}

func (r *medicationRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medication, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+medCols+` FROM medication WHERE id = $1`, id)
	return scanOne(row, storageError)
}

func (r *medicationRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*Medication, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE medication SET
			name = COALESCE($2, name),
			user_id = COALESCE($3, user_id),
			active = COALESCE($4, active),
			updated = NOW()
		WHERE id = $1
		RETURNING `+medCols,
		id, p.Name, p.User, p.Active)
	return scanOne(row, db.WriteError)
}

// Delete removes the medication and the notes attached to it. Stores, doses
// and reminders still pointing at it make the delete fail.
func (r *medicationRepoPG) Delete(ctx context.Context, id uuid.UUID) (*Medication, error) {
	var removed *Medication
	err := db.DeleteNoted(ctx, r.pool, "medication", id, func(ctx context.Context, q db.Queryable) error {
		var err error
		removed, err = scanOne(q.QueryRow(ctx, `DELETE FROM medication WHERE id = $1 RETURNING `+medCols, id), db.DeleteError)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *medicationRepoPG) List(ctx context.Context) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+medCols+` FROM medication ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return CollectRows(rows)
}

// CollectRows scans every row selected with Columns and closes rows.
func CollectRows(rows pgx.Rows) ([]*Medication, error) {
	defer rows.Close()
	items := []*Medication{}
	for rows.Next() {
		m, err := Scan(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func (r *medicationRepoPG) Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Medication, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE medication SET active = FALSE, updated = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR user_id = $2)
		RETURNING `+medCols,
		id, user)
	return scanOne(row, db.WriteError)
}
