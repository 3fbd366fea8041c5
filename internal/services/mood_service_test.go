package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodtrack/moodtrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackMoodAppendsOneEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)
	userID := uuid.New()

	entry, err := svc.TrackMood(userID, "happy", "good day")
	require.NoError(t, err)
	assert.Equal(t, models.MoodHappy, entry.Mood)
	assert.Equal(t, "good day", entry.Note)
	assert.Equal(t, userID, entry.UserID)
	assert.False(t, entry.CreatedAt.IsZero(), "the store stamps creation time")

	var count int64
	db.Model(&models.MoodEntry{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestTrackMoodRejectsUnknownLabelAtStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)

	_, err := svc.TrackMood(uuid.New(), "overjoyed", "")
	require.ErrorIs(t, err, models.ErrInvalidMood)

	var count int64
	db.Model(&models.MoodEntry{}).Count(&count)
	assert.EqualValues(t, 0, count, "a rejected write must leave no partial row")
}

func TestTrackMoodEmptyNoteDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)

	entry, err := svc.TrackMood(uuid.New(), "tired", "")
	require.NoError(t, err)
	assert.Equal(t, "", entry.Note)
}

func TestStatisticsReflectNewEntry(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)
	userID := uuid.New()

	before, err := svc.GetStatistics(userID, time.Now())
	require.NoError(t, err)
	require.Empty(t, before.MoodData)

	_, err = svc.TrackMood(userID, "happy", "")
	require.NoError(t, err)

	after, err := svc.GetStatistics(userID, time.Now())
	require.NoError(t, err)

	require.Len(t, after.MoodData, 1)
	assert.Equal(t, models.MoodHappy, after.MoodData[0].Mood)
	assert.Equal(t, 1, after.MoodData[0].Count)
	assert.Equal(t, models.MoodHappy, after.LatestMood)
}

func TestEntriesRoundTripAndIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.TrackMood(alice, "anxious", "before the interview")
	require.NoError(t, err)
	_, err = svc.TrackMood(bob, "relaxed", "")
	require.NoError(t, err)

	aliceEntries, err := svc.Entries(alice)
	require.NoError(t, err)
	require.Len(t, aliceEntries, 1)
	assert.Equal(t, models.MoodAnxious, aliceEntries[0].Mood)
	assert.Equal(t, "before the interview", aliceEntries[0].Note)
	assert.Equal(t, alice, aliceEntries[0].UserID)

	bobEntries, err := svc.Entries(bob)
	require.NoError(t, err)
	require.Len(t, bobEntries, 1)
	assert.Equal(t, models.MoodRelaxed, bobEntries[0].Mood)

	bobStats, err := svc.GetStatistics(bob, time.Now())
	require.NoError(t, err)
	require.Len(t, bobStats.MoodData, 1)
	assert.Equal(t, models.MoodRelaxed, bobStats.MoodData[0].Mood)
}

func TestEntriesNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)
	userID := uuid.New()

	first, err := svc.TrackMood(userID, "neutral", "")
	require.NoError(t, err)
	second, err := svc.TrackMood(userID, "excited", "")
	require.NoError(t, err)

	// Separate the timestamps explicitly; inserts within one test can land
	// on the same clock tick.
	db.Model(first).UpdateColumn("created_at", time.Now().Add(-time.Hour))
	db.Model(second).UpdateColumn("created_at", time.Now())

	entries, err := svc.Entries(userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.MoodExcited, entries[0].Mood)
	assert.Equal(t, models.MoodNeutral, entries[1].Mood)
}

func TestStatisticsWindowAgainstStoredHistory(t *testing.T) {
	db := newTestDB(t)
	svc := NewMoodService(db)
	userID := uuid.New()

	stale, err := svc.TrackMood(userID, "stressed", "")
	require.NoError(t, err)
	db.Model(stale).UpdateColumn("created_at", time.Now().Add(-8*24*time.Hour))

	_, err = svc.TrackMood(userID, "happy", "")
	require.NoError(t, err)

	stats, err := svc.GetStatistics(userID, time.Now())
	require.NoError(t, err)

	assert.Len(t, stats.MoodData, 2, "full history keeps the stale entry")
	require.Len(t, stats.RecentMoods, 1, "the window drops it")
	assert.Equal(t, models.MoodHappy, stats.RecentMoods[0].Mood)
	assert.True(t, stats.TrendAnalysis.PositiveTrend)
}
