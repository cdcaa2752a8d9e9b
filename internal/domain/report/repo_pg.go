package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medoxido/medoxido/internal/domain/medication"
	"github.com/medoxido/medoxido/internal/domain/store"
	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

func NewReportRepoPG(pool *pgxpool.Pool) ReportRepository {
	return &reportRepoPG{pool: pool}
}

func (r *reportRepoPG) conn(ctx context.Context) db.Queryable {
	return db.Conn(ctx, r.pool)
}

// collect runs query and scans every row with fn.
func collect[T any](ctx context.Context, q db.Queryable, fn func(pgx.CollectableRow) (*T, error), query string, args ...interface{}) ([]*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	items, err := pgx.CollectRows(rows, fn)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if items == nil {
		items = []*T{}
	}
	return items, nil
}

const doseNoteQuery = `
	SELECT n.id, n.content, n.created, n.updated,
		d.id, d.quantity, d.unit, d.created, d.updated,
		s.id, s.lot_number, s.quantity, s.production_date,
		m.id, m.name
	FROM note n
	JOIN dose d ON n.target_kind = 'dose' AND d.id = n.target_id
	JOIN store s ON s.id = d.store
	JOIN medication m ON m.id = d.medication
	WHERE ($1::uuid IS NULL OR d.id = $1)
	ORDER BY n.created, n.id`

func scanDoseNote(row pgx.CollectableRow) (*DoseNote, error) {
	var dn DoseNote
	err := row.Scan(&dn.ID, &dn.Content, &dn.Created, &dn.Updated,
		&dn.DoseID, &dn.DoseQuantity, &dn.Unit, &dn.DoseCreated, &dn.DoseUpdated,
		&dn.StoreID, &dn.StoreLotNumber, &dn.StoreStartQuantity, &dn.StoreProductionDate,
		&dn.MedicationID, &dn.MedicationName)
	return &dn, err
}

func (r *reportRepoPG) DoseNotes(ctx context.Context, doseID *uuid.UUID) ([]*DoseNote, error) {
	return collect(ctx, r.conn(ctx), scanDoseNote, doseNoteQuery, doseID)
}

const medicationNoteQuery = `
	SELECT n.id, n.content, n.created, n.updated, m.id, m.name, m.active
	FROM note n
	JOIN medication m ON n.target_kind = 'medication' AND m.id = n.target_id
	WHERE ($1::uuid IS NULL OR m.id = $1)
	ORDER BY n.created, n.id`

func scanMedicationNote(row pgx.CollectableRow) (*MedicationNote, error) {
	var mn MedicationNote
	err := row.Scan(&mn.ID, &mn.Content, &mn.Created, &mn.Updated,
		&mn.MedicationID, &mn.MedicationName, &mn.MedicationActive)
	return &mn, err
}

func (r *reportRepoPG) MedicationNotes(ctx context.Context, medicationID *uuid.UUID) ([]*MedicationNote, error) {
	return collect(ctx, r.conn(ctx), scanMedicationNote, medicationNoteQuery, medicationID)
}

const storeNoteQuery = `
	SELECT n.id, n.content, n.created, n.updated,
		s.id, s.lot_number, s.quantity, s.unit, s.production_date, s.expiration_date, s.active,
		m.id, m.name
	FROM note n
	JOIN store s ON n.target_kind = 'store' AND s.id = n.target_id
	JOIN medication m ON m.id = s.medication
	WHERE ($1::uuid IS NULL OR s.id = $1)
	ORDER BY n.created, n.id`

func scanStoreNote(row pgx.CollectableRow) (*StoreNote, error) {
	var sn StoreNote
	err := row.Scan(&sn.ID, &sn.Content, &sn.Created, &sn.Updated,
		&sn.StoreID, &sn.StoreLotNumber, &sn.StoreQuantity, &sn.Unit,
		&sn.StoreProductionDate, &sn.StoreExpirationDate, &sn.StoreActive,
		&sn.MedicationID, &sn.MedicationName)
	return &sn, err
}

func (r *reportRepoPG) StoreNotes(ctx context.Context, storeID *uuid.UUID) ([]*StoreNote, error) {
	return collect(ctx, r.conn(ctx), scanStoreNote, storeNoteQuery, storeID)
}

const activeReminderQuery = `
	SELECT r.id, m.id, m.name, r.user_id, r.start_at, r.end_at, r.days, r.times
	FROM reminder r
	JOIN medication m ON m.id = r.medication
	WHERE r.active
	ORDER BY r.start_at, r.id`

func scanActiveReminder(row pgx.CollectableRow) (*ActiveReminder, error) {
	var ar ActiveReminder
	err := row.Scan(&ar.ID, &ar.MedicationID, &ar.MedicationName, &ar.User,
		&ar.Start, &ar.End, &ar.Days, &ar.Times)
	return &ar, err
}

func (r *reportRepoPG) ActiveReminders(ctx context.Context) ([]*ActiveReminder, error) {
	return collect(ctx, r.conn(ctx), scanActiveReminder, activeReminderQuery)
}

func (r *reportRepoPG) StoresForMedication(ctx context.Context, user, medicationID uuid.UUID, active *bool) ([]*store.Store, error) {
	query := `SELECT ` + store.Columns("s") + `
		FROM store s
		WHERE s.medication = $1 AND s.user_id = $2 AND ($3::boolean IS NULL OR s.active = $3)
		ORDER BY s.created, s.id`
	scan := func(row pgx.CollectableRow) (*store.Store, error) { return store.Scan(row) }
	return collect(ctx, r.conn(ctx), scan, query, medicationID, user, active)
}

func (r *reportRepoPG) MedicationsForUser(ctx context.Context, user uuid.UUID, active *bool) ([]*medication.Medication, error) {
	query := `SELECT ` + medication.Columns("m") + `
		FROM medication m
		WHERE m.user_id = $1 AND ($2::boolean IS NULL OR m.active = $2)
		ORDER BY m.created, m.id`
	scan := func(row pgx.CollectableRow) (*medication.Medication, error) { return medication.Scan(row) }
	return collect(ctx, r.conn(ctx), scan, query, user, active)
}
