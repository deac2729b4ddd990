package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Language
	}{
		{"english", "What time is the ceremony?", English},
		{"arabic", "متى موعد الزفاف؟", Arabic},
		{"mixed counts as arabic", "Is the henna party في الفندق?", Arabic},
		{"arabic supplement block", "ݐ", Arabic},
		{"arabic extended-a block", "ࢠ", Arabic},
		{"empty", "", English},
		{"digits only", "12345", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectLanguage(tt.message))
		})
	}
}

func TestParseLanguage(t *testing.T) {
	lang, ok := ParseLanguage(" AR ")
	assert.True(t, ok)
	assert.Equal(t, Arabic, lang)

	_, ok = ParseLanguage("fr")
	assert.False(t, ok)

	_, ok = ParseLanguage("")
	assert.False(t, ok)
}

func TestDetectTopic(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
		found   bool
	}{
		{"schedule in english", "What time is the ceremony?", "schedule", true},
		{"schedule in arabic", "متى موعد الزفاف؟", "schedule", true},
		{"hotel", "Which HOTEL should I book?", "hotel", true},
		{"dress code", "What should I wear, any color theme?", "dress_code", true},
		{"gift", "Is there a gift registry?", "gift", true},
		// "event" scores for both schedule and activities; schedule is declared first
		{"tie goes to earlier topic", "event", "schedule", true},
		{"no match", "qwerty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := DetectTopic(tt.message)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectTopic_HigherScoreWins(t *testing.T) {
	// one schedule keyword ("when") against two travel keywords
	got, ok := DetectTopic("when does my flight reach the airport")
	assert.True(t, ok)
	assert.Equal(t, "travel", got)
}

func TestTopics_Order(t *testing.T) {
	assert.Equal(t, []string{
		"rsvp", "schedule", "venue", "hotel", "travel",
		"dress_code", "food", "activities", "gift", "general",
	}, Topics())
}

func TestCouldNotAnswer(t *testing.T) {
	assert.True(t, CouldNotAnswer("Sorry, I don't know the parking details."))
	assert.True(t, CouldNotAnswer("I'M NOT SURE about that."))
	assert.True(t, CouldNotAnswer("I don't have information about that yet."))
	assert.True(t, CouldNotAnswer("عذراً، لا أعرف"))
	assert.False(t, CouldNotAnswer("The ceremony starts at 5 PM."))
}

func TestFallbackMessage(t *testing.T) {
	assert.Equal(t, "I'm having trouble right now. Please try again in a moment.", FallbackMessage(English))
	assert.Equal(t, "أواجه مشكلة حالياً. يرجى المحاولة مرة أخرى بعد قليل.", FallbackMessage(Arabic))
}
