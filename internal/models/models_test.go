package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoodValid(t *testing.T) {
	for _, m := range AllMoods {
		assert.True(t, m.Valid(), "expected %q to be a valid mood", m)
	}

	assert.False(t, MoodNone.Valid(), "the none sentinel must not be persistable")
	assert.False(t, Mood("").Valid())
	assert.False(t, Mood("ecstatic").Valid())
	assert.False(t, Mood("Happy").Valid(), "labels are case-sensitive")
}

func TestMoodEntryRejectsInvalidMood(t *testing.T) {
	entry := &MoodEntry{Mood: Mood("gloomy")}
	err := entry.BeforeCreate(nil)
	require.ErrorIs(t, err, ErrInvalidMood)
}

func TestMoodEntryAssignsID(t *testing.T) {
	entry := &MoodEntry{Mood: MoodHappy}
	require.NoError(t, entry.BeforeCreate(nil))
	assert.NotZero(t, entry.ID)
}

func TestUserProfileValidation(t *testing.T) {
	negative := -1
	zero := 0

	tests := []struct {
		name    string
		profile UserProfile
		wantErr error
	}{
		{"empty profile", UserProfile{}, nil},
		{"zero age", UserProfile{Age: &zero}, nil},
		{"negative age", UserProfile{Age: &negative}, ErrNegativeAge},
		{"known gender", UserProfile{Gender: "non-binary"}, nil},
		{"unknown gender", UserProfile{Gender: "robot"}, ErrInvalidGender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.BeforeSave(nil)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
