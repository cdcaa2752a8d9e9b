package dose

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type doseRepoPG struct{ pool *pgxpool.Pool }

func NewDoseRepoPG(pool *pgxpool.Pool) DoseRepository {
	return &doseRepoPG{pool: pool}
}

func (r *doseRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

const doseCols = `id, medication, store, user_id, quantity, unit, created, updated`

func scanDose(row pgx.Row) (*Dose, error) {
	var d Dose
	err := row.Scan(&d.ID, &d.Medication, &d.Store, &d.User, &d.Quantity, &d.Unit, &d.Created, &d.Updated)
	return &d, err
}

func scanOne(row pgx.Row, convert func(error) error) (*Dose, error) {
	d, err := scanDose(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return d, nil
}

func (r *doseRepoPG) Create(ctx context.Context, d *Dose) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO dose (medication, store, user_id, quantity, unit)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+doseCols,
		d.Medication, d.Store, d.User, d.Quantity, d.Unit)
	created, err := scanDose(row)
	if err != nil {
		return db.WriteError(err)
	}
	*d = *created
	return nil
}

func (r *doseRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Dose, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+doseCols+` FROM dose WHERE id = $1`, id)
	return scanOne(row, func(err error) error { return apperr.Storage(err) })
}

func (r *doseRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*Dose, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE dose SET
			medication = COALESCE($2, medication),
			store = COALESCE($3, store),
			user_id = COALESCE($4, user_id),
			quantity = COALESCE($5, quantity),
			unit = COALESCE($6, unit),
			updated = NOW()
		WHERE id = $1
		RETURNING `+doseCols,
		id, p.Medication, p.Store, p.User, p.Quantity, p.Unit)
	return scanOne(row, db.WriteError)
}

// Delete removes the dose and the notes attached to it.
func (r *doseRepoPG) Delete(ctx context.Context, id uuid.UUID) (*Dose, error) {
	var removed *Dose
	err := db.DeleteNoted(ctx, r.pool, "dose", id, func(ctx context.Context, q db.Queryable) error {
		var err error
		removed, err = scanOne(q.QueryRow(ctx, `DELETE FROM dose WHERE id = $1 RETURNING `+doseCols, id), db.DeleteError)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *doseRepoPG) List(ctx context.Context) ([]*Dose, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+doseCols+` FROM dose ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []*Dose{}
	for rows.Next() {
		d, err := scanDose(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}
