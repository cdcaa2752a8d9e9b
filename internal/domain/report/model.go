package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// DoseNote is a note attached to a dose, flattened with the dose, the store
// it was drawn from and the medication taken.
type DoseNote struct {
	ID                  uuid.UUID      `json:"id"`
	Content             string         `json:"content"`
	Created             time.Time      `json:"created"`
	Updated             time.Time      `json:"updated"`
	DoseID              uuid.UUID      `json:"dose_id"`
	DoseQuantity        pgtype.Numeric `json:"dose_quantity"`
	Unit                string         `json:"unit"`
	DoseCreated         time.Time      `json:"dose_created"`
	DoseUpdated         time.Time      `json:"dose_updated"`
	StoreID             uuid.UUID      `json:"store_id"`
	StoreLotNumber      string         `json:"store_lot_number"`
	StoreStartQuantity  pgtype.Numeric `json:"store_start_quantity"`
	StoreProductionDate time.Time      `json:"store_production_date"`
	MedicationID        uuid.UUID      `json:"medication_id"`
	MedicationName      string         `json:"medication_name"`
}

// MedicationNote is a note attached to a medication.
type MedicationNote struct {
	ID               uuid.UUID `json:"id"`
	Content          string    `json:"content"`
	Created          time.Time `json:"created"`
	Updated          time.Time `json:"updated"`
	MedicationID     uuid.UUID `json:"medication_id"`
	MedicationName   string    `json:"medication_name"`
	MedicationActive bool      `json:"medication_active"`
}

// StoreNote is a note attached to a store, with the lot's medication.
type StoreNote struct {
	ID                  uuid.UUID      `json:"id"`
	Content             string         `json:"content"`
	Created             time.Time      `json:"created"`
	Updated             time.Time      `json:"updated"`
	StoreID             uuid.UUID      `json:"store_id"`
	StoreLotNumber      string         `json:"store_lot_number"`
	StoreQuantity       pgtype.Numeric `json:"store_quantity"`
	Unit                string         `json:"unit"`
	StoreProductionDate time.Time      `json:"store_production_date"`
	StoreExpirationDate *time.Time     `json:"store_expiration_date"`
	StoreActive         bool           `json:"store_active"`
	MedicationID        uuid.UUID      `json:"medication_id"`
	MedicationName      string         `json:"medication_name"`
}

// ActiveReminder is an active reminder with the name of its medication.
type ActiveReminder struct {
	ID             uuid.UUID  `json:"id"`
	MedicationID   uuid.UUID  `json:"medication_id"`
	MedicationName string     `json:"medication_name"`
	User           *uuid.UUID `json:"user"`
	Start          time.Time  `json:"start"`
	End            *time.Time `json:"end"`
	Days           string     `json:"days"`
	Times          []string   `json:"times"`
}
