package models

// Mood is a closed enumeration of the emotional states a user can log.
type Mood string

const (
	MoodHappy      Mood = "happy"
	MoodExcited    Mood = "excited"
	MoodRelaxed    Mood = "relaxed"
	MoodNeutral    Mood = "neutral"
	MoodStressed   Mood = "stressed"
	MoodAnxious    Mood = "anxious"
	MoodSad        Mood = "sad"
	MoodAngry      Mood = "angry"
	MoodFrustrated Mood = "frustrated"
	MoodTired      Mood = "tired"

	// MoodNone is the sentinel for a user with no entries yet. It is never
	// persisted; it only flows through the statistics and suggestion paths.
	MoodNone Mood = "none"
)

// AllMoods lists every persistable mood label, in display order.
var AllMoods = []Mood{
	MoodHappy,
	MoodExcited,
	MoodRelaxed,
	MoodNeutral,
	MoodStressed,
	MoodAnxious,
	MoodSad,
	MoodAngry,
	MoodFrustrated,
	MoodTired,
}

// Valid reports whether m is one of the ten persistable mood labels.
// MoodNone is not valid for storage.
func (m Mood) Valid() bool {
	for _, known := range AllMoods {
		if m == known {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }
