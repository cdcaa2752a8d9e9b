package dose

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Dose maps to the dose table: one logged intake drawn from a store.
type Dose struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	Medication uuid.UUID      `db:"medication" json:"medication"`
	Store      uuid.UUID      `db:"store" json:"store"`
	User       *uuid.UUID     `db:"user_id" json:"user"`
	Quantity   pgtype.Numeric `db:"quantity" json:"quantity"`
	Unit       string         `db:"unit" json:"unit"`
	Created    time.Time      `db:"created" json:"created"`
	Updated    time.Time      `db:"updated" json:"updated"`
}

// Patch holds the fields of a partial update; nil fields and a null quantity
// are left unchanged.
type Patch struct {
	Medication *uuid.UUID     `json:"medication"`
	Store      *uuid.UUID     `json:"store"`
	User       *uuid.UUID     `json:"user"`
	Quantity   pgtype.Numeric `json:"quantity"`
	Unit       *string        `json:"unit"`
}
