package note

import (
	"time"

	"github.com/google/uuid"
)

// EntityKind names the kind of record a note is attached to.
type EntityKind string

const (
	KindMedication EntityKind = "medication"
	KindStore      EntityKind = "store"
	KindDose       EntityKind = "dose"
	KindReminder   EntityKind = "reminder"
	KindUOM        EntityKind = "uom"
)

var kinds = []EntityKind{KindMedication, KindStore, KindDose, KindReminder, KindUOM}

func (k EntityKind) Valid() bool {
	for _, v := range kinds {
		if k == v {
			return true
		}
	}
	return false
}

// Table returns the table holding records of kind k. Only valid kinds have one.
func (k EntityKind) Table() string {
	if !k.Valid() {
		return ""
	}
	return string(k)
}

// TargetRef points a note at one record of a given kind.
type TargetRef struct {
	Kind EntityKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

// Note maps to the note table.
type Note struct {
	ID      uuid.UUID  `db:"id" json:"id"`
	User    *uuid.UUID `db:"user_id" json:"user"`
	Target  TargetRef  `json:"target"`
	Content string     `db:"content" json:"content"`
	Created time.Time  `db:"created" json:"created"`
	Updated time.Time  `db:"updated" json:"updated"`
}

// Patch replaces a note's content. The target of a note is fixed at creation.
type Patch struct {
	User    *uuid.UUID `json:"user"`
	Content *string    `json:"content"`
}
