package uom

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Service provides business logic for units of measure.
type Service struct {
	uoms UOMRepository
}

func NewService(r UOMRepository) *Service {
	return &Service{uoms: r}
}

func (s *Service) CreateUOM(ctx context.Context, u *UOM) error {
	fe := apperr.FieldErrors{}
	if strings.TrimSpace(u.Name) == "" {
		fe.Add("name", "is required")
	}
	if strings.TrimSpace(u.Abbreviation) == "" {
		fe.Add("abbreviation", "is required")
	}
	if err := fe.Err(); err != nil {
		return err
	}
	return s.uoms.Create(ctx, u)
}

func (s *Service) GetUOM(ctx context.Context, id uuid.UUID) (*UOM, error) {
	return s.uoms.GetByID(ctx, id)
}

func (s *Service) UpdateUOM(ctx context.Context, id uuid.UUID, p *Patch) (*UOM, error) {
	fe := apperr.FieldErrors{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		fe.Add("name", "must not be blank")
	}
	if p.Abbreviation != nil && strings.TrimSpace(*p.Abbreviation) == "" {
		fe.Add("abbreviation", "must not be blank")
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	return s.uoms.Update(ctx, id, p)
}

func (s *Service) DeleteUOM(ctx context.Context, id uuid.UUID) (*UOM, error) {
	return s.uoms.Delete(ctx, id)
}

func (s *Service) ListUOMs(ctx context.Context) ([]*UOM, error) {
	return s.uoms.List(ctx)
}

func (s *Service) DeactivateUOM(ctx context.Context, id uuid.UUID) (*UOM, error) {
	if id == uuid.Nil {
		return nil, apperr.Validation("id", "is required")
	}
	return s.uoms.Deactivate(ctx, id)
}
