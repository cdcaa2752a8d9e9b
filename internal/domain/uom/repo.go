package uom

import (
	"context"

	"github.com/google/uuid"
)

// UOMRepository persists units of measure. Lookups that match nothing return
// a nil record and a nil error.
type UOMRepository interface {
	Create(ctx context.Context, u *UOM) error
	GetByID(ctx context.Context, id uuid.UUID) (*UOM, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*UOM, error)
	Delete(ctx context.Context, id uuid.UUID) (*UOM, error)
	List(ctx context.Context) ([]*UOM, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*UOM, error)
}
