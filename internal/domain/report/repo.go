package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/domain/medication"
	"github.com/medoxido/medoxido/internal/domain/store"
)

// ReportRepository runs the read-only join queries. A nil identifier filter
// matches every row. No matching rows yields an empty slice, not an error.
type ReportRepository interface {
	DoseNotes(ctx context.Context, doseID *uuid.UUID) ([]*DoseNote, error)
	MedicationNotes(ctx context.Context, medicationID *uuid.UUID) ([]*MedicationNote, error)
	StoreNotes(ctx context.Context, storeID *uuid.UUID) ([]*StoreNote, error)
	ActiveReminders(ctx context.Context) ([]*ActiveReminder, error)
	StoresForMedication(ctx context.Context, user, medicationID uuid.UUID, active *bool) ([]*store.Store, error)
	MedicationsForUser(ctx context.Context, user uuid.UUID, active *bool) ([]*medication.Medication, error)
}
