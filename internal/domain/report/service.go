package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/domain/medication"
	"github.com/medoxido/medoxido/internal/domain/store"
)

// Service exposes the aggregate report queries.
type Service struct {
	reports ReportRepository
}

func NewService(r ReportRepository) *Service {
	return &Service{reports: r}
}

func (s *Service) ListAllDoseNotes(ctx context.Context) ([]*DoseNote, error) {
	return s.reports.DoseNotes(ctx, nil)
}

func (s *Service) ListNotesForDose(ctx context.Context, doseID uuid.UUID) ([]*DoseNote, error) {
	return s.reports.DoseNotes(ctx, &doseID)
}

func (s *Service) ListAllMedicationNotes(ctx context.Context) ([]*MedicationNote, error) {
	return s.reports.MedicationNotes(ctx, nil)
}

func (s *Service) ListNotesForMedication(ctx context.Context, medicationID uuid.UUID) ([]*MedicationNote, error) {
	return s.reports.MedicationNotes(ctx, &medicationID)
}

func (s *Service) ListAllStoreNotes(ctx context.Context) ([]*StoreNote, error) {
	return s.reports.StoreNotes(ctx, nil)
}

func (s *Service) ListNotesForStore(ctx context.Context, storeID uuid.UUID) ([]*StoreNote, error) {
	return s.reports.StoreNotes(ctx, &storeID)
}

func (s *Service) ListActiveReminders(ctx context.Context) ([]*ActiveReminder, error) {
	return s.reports.ActiveReminders(ctx)
}

// ListStoresForMedication lists the user's lots of a medication. A nil active
// returns lots regardless of their flag.
func (s *Service) ListStoresForMedication(ctx context.Context, user, medicationID uuid.UUID, active *bool) ([]*store.Store, error) {
	return s.reports.StoresForMedication(ctx, user, medicationID, active)
}

func (s *Service) ListMedicationsForUser(ctx context.Context, user uuid.UUID, active *bool) ([]*medication.Medication, error) {
	return s.reports.MedicationsForUser(ctx, user, active)
}

// DoseNotesWorkbook renders every dose note as an XLSX workbook.
func (s *Service) DoseNotesWorkbook(ctx context.Context) ([]byte, error) {
	rows, err := s.reports.DoseNotes(ctx, nil)
	if err != nil {
		return nil, err
	}
	return GenerateDoseNotesWorkbook(rows)
}
