package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/moodtrack/moodtrack-backend/internal/dto"
	"github.com/moodtrack/moodtrack-backend/internal/models"
	"gorm.io/gorm"
)

// MoodService handles mood intake and statistics for a single user's
// history. The only write path is an append; entries are never updated.
type MoodService struct {
	db *gorm.DB
}

func NewMoodService(db *gorm.DB) *MoodService {
	return &MoodService{db: db}
}

// TrackMood appends one MoodEntry for the given user. The mood label is
// validated by the store (MoodEntry.BeforeCreate), not here.
func (s *MoodService) TrackMood(userID uuid.UUID, mood, note string) (*models.MoodEntry, error) {
	entry := &models.MoodEntry{
		UserID: userID,
		Mood:   models.Mood(mood),
		Note:   note,
	}

	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}

	return entry, nil
}

// Entries returns the user's full mood history, newest first.
func (s *MoodService) Entries(userID uuid.UUID) ([]models.MoodEntry, error) {
	var entries []models.MoodEntry
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}

// GetStatistics fetches the user's history once and derives the full
// aggregate view from that single snapshot.
func (s *MoodService) GetStatistics(userID uuid.UUID, now time.Time) (*dto.StatisticsResponse, error) {
	entries, err := s.Entries(userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeStatistics(entries, now)
	return &stats, nil
}
