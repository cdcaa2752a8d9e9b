package store

import (
	"context"

	"github.com/google/uuid"
)

// StoreRepository persists inventory lots. Lookups that match nothing return
// a nil record and a nil error.
type StoreRepository interface {
	Create(ctx context.Context, s *Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*Store, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*Store, error)
	Delete(ctx context.Context, id uuid.UUID) (*Store, error)
	List(ctx context.Context) ([]*Store, error)
	Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Store, error)
}
