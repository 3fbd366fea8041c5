package services

import (
	"github.com/google/uuid"
	"github.com/moodtrack/moodtrack-backend/internal/models"
	"gorm.io/gorm"
)

// SessionService stores free-text session notes. The statistics path never
// reads these.
type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

func (s *SessionService) Create(userID uuid.UUID, notes string) (*models.Session, error) {
	session := &models.Session{
		UserID: userID,
		Notes:  notes,
	}
	if err := s.db.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) List(userID uuid.UUID) ([]models.Session, error) {
	var sessions []models.Session
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&sessions).Error
	return sessions, err
}
