package dose

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
	"github.com/medoxido/medoxido/internal/platform/db"
)

// Service provides business logic for doses.
type Service struct {
	doses DoseRepository
}

func NewService(r DoseRepository) *Service {
	return &Service{doses: r}
}

func (s *Service) CreateDose(ctx context.Context, d *Dose) error {
	fe := apperr.FieldErrors{}
	if d.Medication == uuid.Nil {
		fe.Add("medication", "is required")
	}
	if d.Store == uuid.Nil {
		fe.Add("store", "is required")
	}
	switch sign, ok := db.NumericSign(d.Quantity); {
	case !d.Quantity.Valid:
		fe.Add("quantity", "is required")
	case !ok:
		fe.Add("quantity", "must be a finite number")
	case sign <= 0:
		fe.Add("quantity", "must be greater than zero")
	}
	if strings.TrimSpace(d.Unit) == "" {
		fe.Add("unit", "is required")
	}
	if err := fe.Err(); err != nil {
		return err
	}
	return s.doses.Create(ctx, d)
}

func (s *Service) GetDose(ctx context.Context, id uuid.UUID) (*Dose, error) {
	return s.doses.GetByID(ctx, id)
}

func (s *Service) UpdateDose(ctx context.Context, id uuid.UUID, p *Patch) (*Dose, error) {
	fe := apperr.FieldErrors{}
	if p.Medication != nil && *p.Medication == uuid.Nil {
		fe.Add("medication", "must not be empty")
	}
	if p.Store != nil && *p.Store == uuid.Nil {
		fe.Add("store", "must not be empty")
	}
	if p.Quantity.Valid {
		if sign, ok := db.NumericSign(p.Quantity); !ok {
			fe.Add("quantity", "must be a finite number")
		} else if sign <= 0 {
			fe.Add("quantity", "must be greater than zero")
		}
	}
	if p.Unit != nil && strings.TrimSpace(*p.Unit) == "" {
		fe.Add("unit", "must not be blank")
	}
	if err := fe.Err(); err != nil {
		return nil, err
	}
	return s.doses.Update(ctx, id, p)
}

func (s *Service) DeleteDose(ctx context.Context, id uuid.UUID) (*Dose, error) {
	return s.doses.Delete(ctx, id)
}

func (s *Service) ListDoses(ctx context.Context) ([]*Dose, error) {
	return s.doses.List(ctx)
}
