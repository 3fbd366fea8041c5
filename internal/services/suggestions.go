package services

import "github.com/moodtrack/moodtrack-backend/internal/models"

// FallbackSuggestion is returned for MoodNone or any unrecognized label.
const FallbackSuggestion = "Take care of yourself, and remember to stay balanced."

var moodSuggestions = map[models.Mood][]string{
	models.MoodHappy: {
		"Keep up the positive vibes! 😊",
		"Try a gratitude journal to stay in the moment.",
		"Continue with light exercises like yoga or walking.",
	},
	models.MoodExcited: {
		"Channel your excitement into a creative project!",
		"Go for a run or do a HIIT workout to harness your energy.",
	},
	models.MoodRelaxed: {
		"Maintain your calm by meditating for 10 minutes.",
		"Try some deep breathing exercises to stay centered.",
	},
	models.MoodNeutral: {
		"You're feeling balanced—maybe try reading or journaling.",
		"A light walk could help boost your mood.",
	},
	models.MoodStressed: {
		"Take a break! Try breathing exercises or short mindfulness meditation.",
		"Go for a walk to clear your head and reset.",
	},
	models.MoodAnxious: {
		"Focus on grounding techniques, like breathing or mindfulness.",
		"Progressive muscle relaxation may help reduce anxiety.",
	},
	models.MoodSad: {
		"Reach out to someone close to you for support.",
		"Try journaling your thoughts or going for a nature walk.",
	},
	models.MoodAngry: {
		"Take deep breaths and try a relaxation technique.",
		"Engage in physical exercise like running or boxing to let off steam.",
	},
	models.MoodFrustrated: {
		"Step away from the situation causing frustration and take a mental break.",
		"Consider trying yoga or mindfulness meditation to regain focus.",
	},
	models.MoodTired: {
		"Make sure you're getting enough sleep and rest.",
		"Engage in low-intensity activities like stretching or yoga.",
	},
}

// SuggestionsFor maps a mood label to its fixed advisory strings. Pure and
// stateless: the same input always yields the same output.
func SuggestionsFor(mood models.Mood) []string {
	if s, ok := moodSuggestions[mood]; ok {
		out := make([]string, len(s))
		copy(out, s)
		return out
	}
	return []string{FallbackSuggestion}
}
