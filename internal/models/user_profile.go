package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNegativeAge   = errors.New("age cannot be negative")
	ErrInvalidGender = errors.New("gender must be one of the fixed gender labels")
)

// Gender labels accepted on a profile. Empty string means unset.
var GenderChoices = []string{"male", "female", "non-binary", "other", "prefer_not_to_say"}

// UserProfile is an optional 1:1 demographic extension of a user account.
// It is never read by the mood intake or statistics paths.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Age       *int      `json:"age"`
	Gender    string    `gorm:"size:20" json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

func (p *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeSave validates demographics on both create and update.
func (p *UserProfile) BeforeSave(tx *gorm.DB) error {
	if p.Age != nil && *p.Age < 0 {
		return ErrNegativeAge
	}
	if p.Gender != "" {
		for _, g := range GenderChoices {
			if p.Gender == g {
				return nil
			}
		}
		return ErrInvalidGender
	}
	return nil
}
