package note

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Service provides business logic for notes.
type Service struct {
	notes NoteRepository
}

func NewService(r NoteRepository) *Service {
	return &Service{notes: r}
}

func kindList() string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func (s *Service) CreateNote(ctx context.Context, n *Note) error {
	fe := apperr.FieldErrors{}
	if !n.Target.Kind.Valid() {
		fe.Add("target", "kind must be one of "+kindList())
	}
	if n.Target.ID == uuid.Nil {
		fe.Add("target", "id is required")
	}
	if strings.TrimSpace(n.Content) == "" {
		fe.Add("content", "is required")
	}
	if err := fe.Err(); err != nil {
		return err
	}
	return s.notes.Create(ctx, n)
}

func (s *Service) GetNote(ctx context.Context, id uuid.UUID) (*Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *Service) UpdateNote(ctx context.Context, id uuid.UUID, p *Patch) (*Note, error) {
	if p.Content != nil && strings.TrimSpace(*p.Content) == "" {
		return nil, apperr.Validation("content", "must not be blank")
	}
	return s.notes.Update(ctx, id, p)
}

func (s *Service) DeleteNote(ctx context.Context, id uuid.UUID) (*Note, error) {
	return s.notes.Delete(ctx, id)
}

func (s *Service) ListNotes(ctx context.Context) ([]*Note, error) {
	return s.notes.List(ctx)
}
