package dose

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/medoxido/medoxido/internal/platform/apperr"
)

// =========== Mock Repository ===========

type mockDoseRepo struct {
	store map[uuid.UUID]*Dose
}

func newMockDoseRepo() *mockDoseRepo {
	return &mockDoseRepo{store: make(map[uuid.UUID]*Dose)}
}

func (m *mockDoseRepo) Create(_ context.Context, d *Dose) error {
	d.ID = uuid.New()
	d.Created = time.Now()
	d.Updated = d.Created
	cp := *d
	m.store[d.ID] = &cp
	return nil
}

func (m *mockDoseRepo) GetByID(_ context.Context, id uuid.UUID) (*Dose, error) {
	d, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoseRepo) Update(_ context.Context, id uuid.UUID, p *Patch) (*Dose, error) {
	d, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	if p.Medication != nil {
		d.Medication = *p.Medication
	}
	if p.Store != nil {
		d.Store = *p.Store
	}
	if p.User != nil {
		d.User = p.User
	}
	if p.Quantity.Valid {
		d.Quantity = p.Quantity
	}
	if p.Unit != nil {
		d.Unit = *p.Unit
	}
	cp := *d
	return &cp, nil
}

func (m *mockDoseRepo) Delete(_ context.Context, id uuid.UUID) (*Dose, error) {
	d, ok := m.store[id]
	if !ok {
		return nil, nil
	}
	delete(m.store, id)
	return d, nil
}

func (m *mockDoseRepo) List(_ context.Context) ([]*Dose, error) {
	items := []*Dose{}
	for _, d := range m.store {
		items = append(items, d)
	}
	return items, nil
}

func newTestService() *Service {
	return NewService(newMockDoseRepo())
}

func qty(s string) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		panic(err)
	}
	return n
}

func qtyText(n pgtype.Numeric) string {
	b, _ := n.MarshalJSON()
	return string(b)
}

// =========== Tests ===========

func TestCreateDose(t *testing.T) {
	svc := newTestService()
	d := &Dose{Medication: uuid.New(), Store: uuid.New(), Quantity: qty("5"), Unit: "mg"}
	if err := svc.CreateDose(context.Background(), d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected ID to be assigned")
	}
}

func TestCreateDose_Validation(t *testing.T) {
	svc := newTestService()
	err := svc.CreateDose(context.Background(), &Dose{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	fields := err.(*apperr.Error).Fields
	for _, f := range []string{"medication", "store", "quantity", "unit"} {
		if len(fields[f]) == 0 {
			t.Errorf("expected error on %s, got %v", f, fields)
		}
	}
}

func TestUpdateDose(t *testing.T) {
	svc := newTestService()
	d := &Dose{Medication: uuid.New(), Store: uuid.New(), Quantity: qty("5"), Unit: "mg"}
	svc.CreateDose(context.Background(), d)

	got, err := svc.UpdateDose(context.Background(), d.ID, &Patch{Quantity: qty("2.5")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qtyText(got.Quantity) != "2.5" || got.Unit != "mg" {
		t.Errorf("unexpected record %+v", got)
	}

	if _, err := svc.UpdateDose(context.Background(), d.ID, &Patch{Quantity: qty("0")}); !apperr.Is(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestDeleteDose_ThenGet(t *testing.T) {
	svc := newTestService()
	d := &Dose{Medication: uuid.New(), Store: uuid.New(), Quantity: qty("5"), Unit: "mg"}
	svc.CreateDose(context.Background(), d)

	deleted, err := svc.DeleteDose(context.Background(), d.ID)
	if err != nil || deleted == nil || deleted.ID != d.ID {
		t.Fatalf("expected deleted record, got %v, %v", deleted, err)
	}
	got, _ := svc.GetDose(context.Background(), d.ID)
	if got != nil {
		t.Error("expected nil after delete")
	}
}
