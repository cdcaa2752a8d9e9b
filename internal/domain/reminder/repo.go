package reminder

import (
	"context"

	"github.com/google/uuid"
)

// ReminderRepository persists reminders. Lookups that match nothing return a
// nil record and a nil error.
type ReminderRepository interface {
	Create(ctx context.Context, r *Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reminder, error)
	Update(ctx context.Context, id uuid.UUID, p *Patch) (*Reminder, error)
	Delete(ctx context.Context, id uuid.UUID) (*Reminder, error)
	List(ctx context.Context) ([]*Reminder, error)
	Deactivate(ctx context.Context, id uuid.UUID, user *uuid.UUID) (*Reminder, error)
}
