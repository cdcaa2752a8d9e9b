package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Store maps to the store table: one received lot of a medication.
type Store struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Medication     uuid.UUID      `db:"medication" json:"medication"`
	User           *uuid.UUID     `db:"user_id" json:"user"`
	ProductionDate time.Time      `db:"production_date" json:"production_date"`
	ExpirationDate *time.Time     `db:"expiration_date" json:"expiration_date"`
	LotNumber      string         `db:"lot_number" json:"lot_number"`
	Quantity       pgtype.Numeric `db:"quantity" json:"quantity"`
	Unit           string         `db:"unit" json:"unit"`
	Active         bool           `db:"active" json:"active"`
	Created        time.Time      `db:"created" json:"created"`
	Updated        time.Time      `db:"updated" json:"updated"`
}

// Patch holds the fields of a partial update; nil fields and a null quantity
// are left unchanged.
// The medication a lot belongs to cannot be changed.
type Patch struct {
	User           *uuid.UUID     `json:"user"`
	ProductionDate *time.Time     `json:"production_date"`
	ExpirationDate *time.Time     `json:"expiration_date"`
	LotNumber      *string        `json:"lot_number"`
	Quantity       pgtype.Numeric `json:"quantity"`
	Unit           *string        `json:"unit"`
	Active         *bool          `json:"active"`
}

type DeactivateRequest struct {
	ID   uuid.UUID  `json:"id"`
	User *uuid.UUID `json:"user"`
}
