package medication

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// Service provides business logic for medications.
type Service struct {
	medications MedicationRepository
}

func NewService(meds MedicationRepository) *Service {
	return &Service{medications: meds}
}

func invalidName() error {
	return apperr.BadRequest("invalid medication name")
}

func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if !IsValidName(m.Name) {
		return invalidName()
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) GetMedication(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.medications.GetByID(ctx, id)
}

func (s *Service) UpdateMedication(ctx context.Context, id uuid.UUID, p *Patch) (*Medication, error) {
	if p.Name != nil && !IsValidName(*p.Name) {
		return nil, invalidName()
	}
	return s.medications.Update(ctx, id, p)
}

func (s *Service) DeleteMedication(ctx context.Context, id uuid.UUID) (*Medication, error) {
	return s.medications.Delete(ctx, id)
}

func (s *Service) ListMedications(ctx context.Context) ([]*Medication, error) {
	return s.medications.List(ctx)
}

func (s *Service) DeactivateMedication(ctx context.Context, req *DeactivateRequest) (*Medication, error) {
	if req.ID == uuid.Nil {
		return nil, apperr.Validation("id", "is required")
	}
	return s.medications.Deactivate(ctx, req.ID, req.User)
}
