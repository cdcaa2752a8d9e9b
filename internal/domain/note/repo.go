package note

import (
	"context"

	"github.com/google/uuid"
)

// NoteRepository persists notes. Lookups that match nothing return a nil
// record and a nil error. Create fails with a validation error on "target"
// when the target record does not exist.
type NoteRepository interface {
	Create(ctx context.Context, n *Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*Note, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*Note, error)
	Delete(ctx context.Context, id uuid.UUID) (*Note, error)
	List(ctx context.Context) ([]*Note, error)
}
