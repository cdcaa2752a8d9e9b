package reminder

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type reminderRepoPG struct{ pool *pgxpool.Pool }

func NewReminderRepoPG(pool *pgxpool.Pool) ReminderRepository {
	return &reminderRepoPG{pool: pool}
}

func (r *reminderRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

const reminderCols = `id, medication, user_id, start_at, end_at, days, times, active, created, updated`

func scanReminder(row pgx.Row) (*Reminder, error) {
	var rem Reminder
	err := row.Scan(&rem.ID, &rem.Medication, &rem.User, &rem.Start, &rem.End,
		&rem.Days, &rem.Times, &rem.Active, &rem.Created, &rem.Updated)
	return &rem, err
}

func scanOne(row pgx.Row, convert func(error) error) (*Reminder, error) {
	rem, err := scanReminder(row)
	if db.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, convert(err)
	}
	return rem, nil
}

func (r *reminderRepoPG) Create(ctx context.Context, rem *Reminder) error {
	row := r.conn(ctx).QueryRow(ctx, `
		INSERT INTO reminder (medication, user_id, start_at, end_at, days, times, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+reminderCols,
		rem.Medication, rem.User, rem.Start, rem.End, rem.Days, rem.Times, rem.Active)
	created, err := scanReminder(row)
	if err != nil {
		return db.WriteError(err)
	}
	*rem = *created
	return nil
}

func (r *reminderRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	row := r.conn(ctx).QueryRow(ctx, `SELECT `+reminderCols+` FROM reminder WHERE id = $1`, id)
	return scanOne(row, func(err error) error { return apperr.Storage(err) })
}

func (r *reminderRepoPG) Update(ctx context.Context, id uuid.UUID, p *Patch) (*Reminder, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE reminder SET
			medication = COALESCE($2, medication),
			user_id = COALESCE($3, user_id),
			start_at = COALESCE($4, start_at),
			end_at = COALESCE($5, end_at),
			days = COALESCE($6, days),
			times = COALESCE($7, times),
			active = COALESCE($8, active),
			updated = NOW()
		WHERE id = $1
		RETURNING `+reminderCols,
		id, p.Medication, p.User, p.Start, p.End, p.Days, p.Times, p.Active)
	return scanOne(row, db.WriteError)
}

// Delete removes the reminder and the notes attached to it.
func (r *reminderRepoPG) Delete(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	var removed *Reminder
	err := db.DeleteNoted(ctx, r.pool, "reminder", id, func(ctx context.Context, q db.Queryable) error {
		var err error
		removed, err = scanOne(q.QueryRow(ctx, `DELETE FROM reminder WHERE id = $1 RETURNING `+reminderCols, id), db.DeleteError)
		return err
	})
	if err != nil {
		return nil, err
	}
	return removed, nil
}

func (r *reminderRepoPG) List(ctx context.Context) ([]*Reminder, error) {
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+reminderCols+` FROM reminder ORDER BY created, id`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	items := []*Reminder{}
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		items = append(items, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return items, nil
}

func (r *reminderRepoPG) Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Reminder, error) {
	row := r.conn(ctx).QueryRow(ctx, `
		UPDATE reminder SET active = FALSE, updated = NOW()
		WHERE id = $1 AND ($2::uuid IS NULL OR user_id = $2)
		RETURNING `+reminderCols,
		id, user)
	return scanOne(row, db.WriteError)
}
