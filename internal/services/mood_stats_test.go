package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moodtrack/moodtrack-backend/internal/dto"
	"github.com/moodtrack/moodtrack-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(mood models.Mood, at time.Time) models.MoodEntry {
	return models.MoodEntry{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Mood:      mood,
		CreatedAt: at,
	}
}

func TestComputeStatisticsEmptyHistory(t *testing.T) {
	now := time.Now()
	stats := ComputeStatistics(nil, now)

	assert.Empty(t, stats.MoodData)
	assert.Equal(t, models.MoodNone, stats.LatestMood)
	assert.False(t, stats.TrendAnalysis.HighStress)
	assert.False(t, stats.TrendAnalysis.RecurrentSadness)
	assert.False(t, stats.TrendAnalysis.PositiveTrend)
	assert.Empty(t, stats.MoodTrend)
	assert.Empty(t, stats.RecentMoods)
	assert.Equal(t, []string{FallbackSuggestion}, stats.MoodSuggestions)
}

// Counts are true occurrence counts. The size of an entry's identifier has
// no influence on the aggregate, and ordering is by count descending.
func TestComputeStatisticsCountsOccurrences(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodHappy, now.Add(-1*time.Hour)),
		entryAt(models.MoodHappy, now.Add(-2*time.Hour)),
		entryAt(models.MoodHappy, now.Add(-3*time.Hour)),
		entryAt(models.MoodTired, now.Add(-4*time.Hour)),
		entryAt(models.MoodTired, now.Add(-5*time.Hour)),
		entryAt(models.MoodSad, now.Add(-6*time.Hour)),
	}

	stats := ComputeStatistics(entries, now)

	require.Len(t, stats.MoodData, 3)
	assert.Equal(t, dto.MoodCount{Mood: models.MoodHappy, Count: 3}, stats.MoodData[0])
	assert.Equal(t, dto.MoodCount{Mood: models.MoodTired, Count: 2}, stats.MoodData[1])
	assert.Equal(t, dto.MoodCount{Mood: models.MoodSad, Count: 1}, stats.MoodData[2])
}

func TestComputeStatisticsLatestMood(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodSad, now.Add(-48*time.Hour)),
		entryAt(models.MoodRelaxed, now.Add(-1*time.Minute)),
		entryAt(models.MoodAngry, now.Add(-24*time.Hour)),
	}

	stats := ComputeStatistics(entries, now)

	assert.Equal(t, models.MoodRelaxed, stats.LatestMood)
	assert.Equal(t, SuggestionsFor(models.MoodRelaxed), stats.MoodSuggestions)
}

func TestComputeStatisticsHighStressThreshold(t *testing.T) {
	now := time.Now()

	two := []models.MoodEntry{
		entryAt(models.MoodStressed, now.Add(-1*time.Hour)),
		entryAt(models.MoodStressed, now.Add(-2*time.Hour)),
	}
	assert.False(t, ComputeStatistics(two, now).TrendAnalysis.HighStress,
		"two stressed entries must not trip the flag")

	three := append(two, entryAt(models.MoodStressed, now.Add(-3*time.Hour)))
	assert.True(t, ComputeStatistics(three, now).TrendAnalysis.HighStress,
		"three stressed entries in the window must trip the flag")
}

func TestComputeStatisticsRecurrentSadness(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodSad, now.Add(-1*time.Hour)),
		entryAt(models.MoodSad, now.Add(-25*time.Hour)),
		entryAt(models.MoodSad, now.Add(-50*time.Hour)),
	}

	stats := ComputeStatistics(entries, now)
	assert.True(t, stats.TrendAnalysis.RecurrentSadness)
	assert.False(t, stats.TrendAnalysis.PositiveTrend)
}

func TestComputeStatisticsPositiveTrend(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodHappy, now.Add(-1*time.Hour)),
		entryAt(models.MoodHappy, now.Add(-2*time.Hour)),
		entryAt(models.MoodSad, now.Add(-3*time.Hour)),
	}

	assert.True(t, ComputeStatistics(entries, now).TrendAnalysis.PositiveTrend)

	balanced := append(entries, entryAt(models.MoodSad, now.Add(-4*time.Hour)))
	assert.False(t, ComputeStatistics(balanced, now).TrendAnalysis.PositiveTrend,
		"equal happy and sad counts are not a positive trend")
}

// Entries older than seven days stay in the full-history counts but are
// excluded from every windowed computation.
func TestComputeStatisticsWindowBoundary(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodStressed, now.Add(-8*24*time.Hour)),
		entryAt(models.MoodStressed, now.Add(-9*24*time.Hour)),
		entryAt(models.MoodStressed, now.Add(-10*24*time.Hour)),
		entryAt(models.MoodNeutral, now.Add(-1*time.Hour)),
	}

	stats := ComputeStatistics(entries, now)

	require.Len(t, stats.MoodData, 2)
	assert.Equal(t, dto.MoodCount{Mood: models.MoodStressed, Count: 3}, stats.MoodData[0])

	require.Len(t, stats.RecentMoods, 1)
	assert.Equal(t, models.MoodNeutral, stats.RecentMoods[0].Mood)
	assert.False(t, stats.TrendAnalysis.HighStress,
		"stale stressed entries must not trip the windowed flag")
	assert.Equal(t, []dto.MoodCount{{Mood: models.MoodNeutral, Count: 1}}, stats.MoodTrend)
}

func TestComputeStatisticsWindowInclusive(t *testing.T) {
	now := time.Now()
	onBoundary := entryAt(models.MoodTired, now.Add(-7*24*time.Hour))

	stats := ComputeStatistics([]models.MoodEntry{onBoundary}, now)
	require.Len(t, stats.RecentMoods, 1, "an entry exactly seven days old is inside the window")
}

// The windowed counts keep chronological first-occurrence order, unlike the
// count-descending full-history counts.
func TestComputeStatisticsTrendOrdering(t *testing.T) {
	now := time.Now()
	entries := []models.MoodEntry{
		entryAt(models.MoodAnxious, now.Add(-1*time.Hour)),
		entryAt(models.MoodAnxious, now.Add(-2*time.Hour)),
		entryAt(models.MoodExcited, now.Add(-3*time.Hour)),
		entryAt(models.MoodAnxious, now.Add(-96*time.Hour)),
		entryAt(models.MoodFrustrated, now.Add(-120*time.Hour)),
	}

	stats := ComputeStatistics(entries, now)

	require.Len(t, stats.MoodTrend, 3)
	assert.Equal(t, models.MoodFrustrated, stats.MoodTrend[0].Mood)
	assert.Equal(t, models.MoodAnxious, stats.MoodTrend[1].Mood)
	assert.Equal(t, 3, stats.MoodTrend[1].Count)
	assert.Equal(t, models.MoodExcited, stats.MoodTrend[2].Mood)

	// Raw windowed entries come back oldest first.
	for i := 1; i < len(stats.RecentMoods); i++ {
		assert.False(t, stats.RecentMoods[i].CreatedAt.Before(stats.RecentMoods[i-1].CreatedAt))
	}
}
