package dose

import (
	"context"

	"github.com/google/uuid"
)

// DoseRepository persists doses. Lookups that match nothing return a nil
// record and a nil error.
type DoseRepository interface {
	Create(ctx context.Context, d *Dose) error
	GetByID(ctx context.Context, id uuid.UUID) (*Dose, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*Dose, error)
	Delete(ctx context.Context, id uuid.UUID) (*Dose, error)
	List(ctx context.Context) ([]*Dose, error)
}
