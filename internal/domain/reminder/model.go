package reminder

import (
	"time"

	"github.com/google/uuid"
)

// Reminder maps to the reminder table: a schedule for taking a medication.
// Days is a free-form days-of-week string such as "Mon,Wed,Fri"; Times holds
// one or more HH:MM times of day.
type Reminder struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Medication uuid.UUID  `db:"medication" json:"medication"`
	User       *uuid.UUID `db:"user_id" json:"user"`
	Start      time.Time  `db:"start_at" json:"start"`
	End        *time.Time `db:"end_at" json:"end"`
	Days       string     `db:"days" json:"days"`
	Times      []string   `db:"times" json:"times"`
	Active     bool       `db:"active" json:"active"`
	Created    time.Time  `db:"created" json:"created"`
	Updated    time.Time  `db:"updated" json:"updated"`
}

// Patch holds the fields of a partial update; nil fields are left unchanged.
type Patch struct {
	Medication *uuid.UUID `json:"medication"`
	User       *uuid.UUID `json:"user"`
	Start      *time.Time `json:"start"`
	End        *time.Time `json:"end"`
	Days       *string    `json:"days"`
	Times      []string   `json:"times"`
	Active     *bool      `json:"active"`
}

type DeactivateRequest struct {
	ID   uuid.UUID  `json:"id"`
	User *uuid.UUID `json:"user"`
}
