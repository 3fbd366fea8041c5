package dto

import "github.com/moodtrack/moodtrack-backend/internal/models"

type TrackMoodRequest struct {
	Mood     string `json:"mood" form:"mood"`
	MoodNote string `json:"mood_note" form:"mood_note"`
}

// TrackMoodFormResponse is the empty intake form rendered on a GET.
type TrackMoodFormResponse struct {
	Moods []models.Mood `json:"moods"`
}

// MoodCount is one row of a per-mood occurrence count.
type MoodCount struct {
	Mood  models.Mood `json:"mood"`
	Count int         `json:"count"`
}

// TrendAnalysis carries the three boolean flags computed over the trailing
// 7-day window.
type TrendAnalysis struct {
	HighStress       bool `json:"high_stress"`
	RecurrentSadness bool `json:"recurrent_sadness"`
	PositiveTrend    bool `json:"positive_trend"`
}

// StatisticsResponse is the full aggregate view for one user. Field names
// mirror the keys the statistics page has always been rendered from.
type StatisticsResponse struct {
	MoodData        []MoodCount        `json:"mood_data"`
	LatestMood      models.Mood        `json:"latest_mood"`
	TrendAnalysis   TrendAnalysis      `json:"trend_analysis"`
	MoodTrend       []MoodCount        `json:"mood_trend"`
	MoodSuggestions []string           `json:"mood_suggestions"`
	RecentMoods     []models.MoodEntry `json:"recent_moods"`
}
