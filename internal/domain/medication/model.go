package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication maps to the medication table.
type Medication struct {
	ID      uuid.UUID  `db:"id" json:"id"`
	Name    string     `db:"name" json:"name"`
	User    *uuid.UUID `db:"user_id" json:"user"`
	Active  bool       `db:"active" json:"active"`
	Created time.Time  `db:"created" json:"created"`
	Updated time.Time  `db:"updated" json:"updated"`
}

// Patch holds the fields of a partial update; nil fields are left unchanged.
type Patch struct {
	Name   *string    `json:"name"`
	User   *uuid.UUID `json:"user"`
	Active *bool      `json:"active"`
}

// DeactivateRequest identifies the medication to switch off. When User is
// set, only a medication owned by that user matches.
type DeactivateRequest struct {
	ID   uuid.UUID  `json:"id"`
	User *uuid.UUID `json:"user"`
}
