package medication

import (
	"context"

	"github.com/google/uuid"
)

// MedicationRepository persists medications. Lookups that match nothing
// return a nil record and a nil error.
type MedicationRepository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*Medication, error)
	Delete(ctx context.Context, id uuid.UUID) (*Medication, error)
	List(ctx context.Context) ([]*Medication, error)
	Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Medication, error)
}
