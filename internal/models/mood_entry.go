package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidMood is returned when a write carries a label outside the
// fixed mood set. Enforced at persistence time, not in handlers.
var ErrInvalidMood = errors.New("mood must be one of the fixed mood labels")

// MoodEntry is a single mood observation. Entries are append-only: created
// once by the intake handler, never updated, newest first by default.
type MoodEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Mood      Mood      `gorm:"size:50;not null" json:"mood"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate rejects out-of-enum labels so the invariant holds at the
// store boundary regardless of which caller performs the insert.
func (e *MoodEntry) BeforeCreate(tx *gorm.DB) error {
	if !e.Mood.Valid() {
		return ErrInvalidMood
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
