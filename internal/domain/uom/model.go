package uom

import (
	"time"

	"github.com/google/uuid"
)

// UOM maps to the uom table: a unit such as "milligram" / "mg".
type UOM struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Abbreviation string    `db:"abbreviation" json:"abbreviation"`
	Active       bool      `db:"active" json:"active"`
	Created      time.Time `db:"created" json:"created"`
	Updated      time.Time `db:"updated" json:"updated"`
}

// Patch holds the fields of a partial update; nil fields are left unchanged.
type Patch struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
	Active       *bool   `json:"active"`
}

type DeactivateRequest struct {
	ID uuid.UUID `json:"id"`
}
