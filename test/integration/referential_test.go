//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medoxido/medoxido/internal/domain/dose"
	"github.com/medoxido/medoxido/internal/domain/note"
	"github.com/medoxido/medoxido/internal/domain/store"
	"github.com/medoxido/medoxido/internal/platform/apperr"
)

func fieldErrors(t *testing.T, err error) apperr.FieldErrors {
	t.Helper()
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	return e.Fields
}

func TestDeleteReferencedMedicationIsRestricted(t *testing.T) {
	s := newNamespace(t, "restrict")
	ctx := context.Background()
	med := createMedication(t, s, "ibuprofen", nil)
	createStore(t, s, med.ID, "L1", nil)
	n := &note.Note{Target: note.TargetRef{Kind: note.KindMedication, ID: med.ID}, Content: "keep out of reach"}
	if err := s.Notes.CreateNote(ctx, n); err != nil {
		t.Fatalf("create note: %v", err)
	}

	_, err := s.Medications.DeleteMedication(ctx, med.ID)
	fields := fieldErrors(t, err)
	if len(fields["id"]) == 0 {
		t.Errorf("expected error on id, got %v", fields)
	}

	still, err := s.Medications.GetMedication(ctx, med.ID)
	if err != nil || still == nil {
		t.Fatalf("medication should survive a rejected delete: %+v, %v", still, err)
	}
	kept, err := s.Notes.GetNote(ctx, n.ID)
	if err != nil || kept == nil {
		t.Errorf("note should survive a rejected delete: %+v, %v", kept, err)
	}
}

func TestDanglingReferenceIsValidationError(t *testing.T) {
	s := newNamespace(t, "dangling")
	ctx := context.Background()

	err := s.Stores.CreateStore(ctx, &store.Store{Medication: uuid.New(), LotNumber: "L1", Quantity: quantity("1"), Unit: "mg"})
	fields := fieldErrors(t, err)
	if len(fields["medication"]) == 0 {
		t.Errorf("expected error on medication, got %v", fields)
	}
}

func TestDoseStoreMustHoldSameMedication(t *testing.T) {
	s := newNamespace(t, "mismatch")
	ctx := context.Background()
	ibu := createMedication(t, s, "ibuprofen", nil)
	para := createMedication(t, s, "Paracetamol", nil)
	paraLot := createStore(t, s, para.ID, "P1", nil)

	err := s.Doses.CreateDose(ctx, &dose.Dose{Medication: ibu.ID, Store: paraLot.ID, Quantity: quantity("1"), Unit: "mg"})
	fields := fieldErrors(t, err)
	if len(fields["store"]) == 0 {
		t.Errorf("expected error on store, got %v", fields)
	}
}

func TestNotesAreRemovedWithTheirTarget(t *testing.T) {
	s := newNamespace(t, "cascade")
	ctx := context.Background()
	med := createMedication(t, s, "ibuprofen", nil)
	st := createStore(t, s, med.ID, "L1", nil)
	d := createDose(t, s, med.ID, st.ID)

	n := &note.Note{Target: note.TargetRef{Kind: note.KindDose, ID: d.ID}, Content: "with food"}
	if err := s.Notes.CreateNote(ctx, n); err != nil {
		t.Fatalf("create note: %v", err)
	}

	notes, err := s.Reports.ListNotesForDose(ctx, d.ID)
	if err != nil {
		t.Fatalf("list dose notes: %v", err)
	}
	if len(notes) != 1 || notes[0].MedicationName != "ibuprofen" || notes[0].StoreLotNumber != "L1" {
		t.Fatalf("unexpected dose notes %+v", notes)
	}

	if _, err := s.Doses.DeleteDose(ctx, d.ID); err != nil {
		t.Fatalf("delete dose: %v", err)
	}
	gone, err := s.Notes.GetNote(ctx, n.ID)
	if err != nil {
		t.Fatalf("get note: %v", err)
	}
	if gone != nil {
		t.Errorf("expected note to be removed with its dose, got %+v", gone)
	}
}

func TestNoteTargetMustExist(t *testing.T) {
	s := newNamespace(t, "notetarget")
	ctx := context.Background()

	err := s.Notes.CreateNote(ctx, &note.Note{
		Target:  note.TargetRef{Kind: note.KindStore, ID: uuid.New()},
		Content: "orphan",
	})
	fields := fieldErrors(t, err)
	if len(fields["target"]) == 0 {
		t.Errorf("expected error on target, got %v", fields)
	}
}

func TestStoresForMedicationStatus(t *testing.T) {
	s := newNamespace(t, "status")
	ctx := context.Background()
	user := uuid.New()
	med := createMedication(t, s, "ibuprofen", &user)
	a := createStore(t, s, med.ID, "A", &user)
	createStore(t, s, med.ID, "B", &user)

	if _, err := s.Stores.DeactivateStore(ctx, &store.DeactivateRequest{ID: a.ID}); err != nil {
		t.Fatalf("deactivate store: %v", err)
	}

	active := true
	lots, err := s.Reports.ListStoresForMedication(ctx, user, med.ID, &active)
	if err != nil {
		t.Fatalf("list stores: %v", err)
	}
	if len(lots) != 1 || lots[0].LotNumber != "B" {
		t.Errorf("expected only lot B, got %+v", lots)
	}

	all, err := s.Reports.ListStoresForMedication(ctx, user, med.ID, nil)
	if err != nil {
		t.Fatalf("list stores: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected two lots, got %d", len(all))
	}
}
