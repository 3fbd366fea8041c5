package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is a free-text session note tied to a user and a point in time.
// Independent of mood tracking; no handler specified here consumes it.
type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date   time.Time `gorm:"autoCreateTime" json:"date"`
	Notes  string    `gorm:"type:text" json:"notes"`
	User   User      `gorm:"foreignKey:UserID" json:"-"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
