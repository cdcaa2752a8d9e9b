package medication

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// =========== Mock Repository ===========

type mockMedRepo struct {
	store map[uuid.UUID]*Medication
}

func newMockMedRepo() *mockMedRepo {
	return &mockMedRepo{store: make(map[uuid.UUID]*Medication)}
}

func (m *mockMedRepo) Create(_ context.Context, med *Medication) error {
	med.ID = uuid.New()
	med.Created = time.Now()
	med.Updated = med.Created
	cp := *med
	m.store[med.ID] = &cp
	return nil
}

func (m *mockMedRepo) GetByID(_ context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	cp := *med
	return &cp, nil
}

func (m *mockMedRepo) Update(_ context.Context, id uuid.UUID, p *Patch) (*Medication, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	if p.Name != nil {
		med.Name = *p.Name
	}
	if p.User != nil {
		med.User = p.User
	}
	if p.Active != nil {
		med.Active = *p.Active
	}
	med.Updated = time.Now()
	cp := *med
	return &cp, nil
}

func (m *mockMedRepo) Delete(_ context.Context, id uuid.UUID) (*Medication, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	delete(m.store, id)
	return med, nil
}

func (m *mockMedRepo) List(_ context.Context) ([]*Medication, error) {
	items := []*Medication{}
	for _, med := range m.store {
		items = append(items, med)
	}
	return items, nil
}

func (m *mockMedRepo) Deactivate(_ context.Context, id uuid.UUID, user *uuid.UUID) (*Medication, error) {
	med, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	if user != nil && (med.User == nil || *med.User != *user) {
		return nil, nil
	}
	med.Active = false
	cp := *med
	return &cp, nil
}

func newTestService() *Service {
	return NewService(newMockMedRepo())
}

func strPtr(s string) *string { return &s }

// =========== Tests ===========

func TestCreateMedication(t *testing.T) {
	svc := newTestService()
	m := &Medication{Name: "ibuprofen", Active: true}
	if err := svc.CreateMedication(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
}

func TestCreateMedication_InvalidName(t *testing.T) {
	svc := newTestService()
	for _, name := range []string{"", "ab", "MyServerMed", "fuck"} {
		err := svc.CreateMedication(context.Background(), &Medication{Name: name})
		if !apperr.Is(err, apperr.KindBadRequest) {
			t.Errorf("name %q: expected bad request, got %v", name, err)
		}
	}
}

func TestGetMedication_RoundTrip(t *testing.T) {
	svc := newTestService()
	user := uuid.New()
	m := &Medication{Name: "Paracetamol", User: &user, Active: true}
	svc.CreateMedication(context.Background(), m)

	got, err := svc.GetMedication(context.Background(), m.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Paracetamol" || got.User == nil || *got.User != user || !got.Active {
		t.Errorf("unexpected record %+v", got)
	}
}

func TestUpdateMedication(t *testing.T) {
	svc := newTestService()
	m := &Medication{Name: "ibuprofen", Active: true}
	svc.CreateMedication(context.Background(), m)

	got, err := svc.UpdateMedication(context.Background(), m.ID, &Patch{Name: strPtr("Ibuprofen 200")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Ibuprofen 200" {
		t.Errorf("expected updated name, got %s", got.Name)
	}

	if _, err := svc.UpdateMedication(context.Background(), m.ID, &Patch{Name: strPtr("server")}); !apperr.Is(err, apperr.KindBadRequest) {
		t.Errorf("expected bad request for invalid name, got %v", err)
	}
}

func TestUpdateMedication_Absent(t *testing.T) {
	svc := newTestService()
	got, err := svc.UpdateMedication(context.Background(), uuid.New(), &Patch{})
	if err != nil || got != nil {
		t.Errorf("expected nil, nil; got %v, %v", got, err)
	}
}

func TestDeleteMedication(t *testing.T) {
	svc := newTestService()
	m := &Medication{Name: "ibuprofen", Active: true}
	svc.CreateMedication(context.Background(), m)

	if _, err := svc.DeleteMedication(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := svc.GetMedication(context.Background(), m.ID)
	if got != nil {
		t.Error("expected nil after delete")
	}
}

func TestDeactivateMedication_ScopedToUser(t *testing.T) {
	svc := newTestService()
	owner := uuid.New()
	other := uuid.New()
	m := &Medication{Name: "ibuprofen", User: &owner, Active: true}
	svc.CreateMedication(context.Background(), m)

	got, err := svc.DeactivateMedication(context.Background(), &DeactivateRequest{ID: m.ID, User: &other})
	if err != nil || got != nil {
		t.Fatalf("expected no match for another user, got %v, %v", got, err)
	}

	got, err = svc.DeactivateMedication(context.Background(), &DeactivateRequest{ID: m.ID, User: &owner})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Active {
		t.Error("expected active=false")
	}
}
