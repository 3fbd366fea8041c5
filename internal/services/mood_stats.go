package services

import (
	"sort"
	"time"

	"github.com/moodtrack/moodtrack-backend/internal/dto"
	"github.com/moodtrack/moodtrack-backend/internal/models"
)

// trendWindow is the trailing period the trend flags are computed over.
const trendWindow = 7 * 24 * time.Hour

// ComputeStatistics derives the full aggregate view from a user's entries
// and the current time. Pure: no clock reads, no storage access.
//
// Full-history counts are true occurrence counts ordered descending by
// count (ties broken by label). Windowed counts are ordered by the
// chronological first occurrence of each mood within the window, which is
// deliberately a different ordering from the full-history counts.
func ComputeStatistics(entries []models.MoodEntry, now time.Time) dto.StatisticsResponse {
	stats := dto.StatisticsResponse{
		MoodData:    []dto.MoodCount{},
		LatestMood:  models.MoodNone,
		MoodTrend:   []dto.MoodCount{},
		RecentMoods: []models.MoodEntry{},
	}

	// Full-history occurrence counts, descending by count.
	counts := make(map[models.Mood]int)
	for _, e := range entries {
		counts[e.Mood]++
	}
	for mood, n := range counts {
		stats.MoodData = append(stats.MoodData, dto.MoodCount{Mood: mood, Count: n})
	}
	sort.Slice(stats.MoodData, func(i, j int) bool {
		if stats.MoodData[i].Count != stats.MoodData[j].Count {
			return stats.MoodData[i].Count > stats.MoodData[j].Count
		}
		return stats.MoodData[i].Mood < stats.MoodData[j].Mood
	})

	// Latest mood: greatest CreatedAt, or the none sentinel.
	if len(entries) > 0 {
		latest := entries[0]
		for _, e := range entries[1:] {
			if e.CreatedAt.After(latest.CreatedAt) {
				latest = e
			}
		}
		stats.LatestMood = latest.Mood
	}

	// Trend window: entries no older than seven days, oldest first.
	cutoff := now.Add(-trendWindow)
	for _, e := range entries {
		if !e.CreatedAt.Before(cutoff) {
			stats.RecentMoods = append(stats.RecentMoods, e)
		}
	}
	sort.Slice(stats.RecentMoods, func(i, j int) bool {
		return stats.RecentMoods[i].CreatedAt.Before(stats.RecentMoods[j].CreatedAt)
	})

	var stressed, sad, happy int
	windowCounts := make(map[models.Mood]int)
	firstSeen := []models.Mood{}
	for _, e := range stats.RecentMoods {
		if windowCounts[e.Mood] == 0 {
			firstSeen = append(firstSeen, e.Mood)
		}
		windowCounts[e.Mood]++
		switch e.Mood {
		case models.MoodStressed:
			stressed++
		case models.MoodSad:
			sad++
		case models.MoodHappy:
			happy++
		}
	}

	stats.TrendAnalysis = dto.TrendAnalysis{
		HighStress:       stressed > 2,
		RecurrentSadness: sad > 2,
		PositiveTrend:    happy > sad,
	}

	for _, mood := range firstSeen {
		stats.MoodTrend = append(stats.MoodTrend, dto.MoodCount{Mood: mood, Count: windowCounts[mood]})
	}

	stats.MoodSuggestions = SuggestionsFor(stats.LatestMood)

	return stats
}
