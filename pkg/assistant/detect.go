// Package assistant holds the language-independent pieces of the guest
// chatbot: language and topic detection, answer classification and the
// system prompt.
package assistant

import (
	"strings"
	"unicode"
)

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage returns the language for an explicit hint, or false when the
// hint is empty or unknown.
func ParseLanguage(hint string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(hint))) {
	case English:
		return English, true
	case Arabic:
		return Arabic, true
	}
	return "", false
}

var arabicRanges = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0600, Hi: 0x06FF, Stride: 1},
		{Lo: 0x0750, Hi: 0x077F, Stride: 1},
		{Lo: 0x08A0, Hi: 0x08FF, Stride: 1},
	},
}

// DetectLanguage is a script heuristic: a single Arabic-block rune makes the
// message Arabic.
func DetectLanguage(message string) Language {
	for _, r := range message {
		if unicode.Is(arabicRanges, r) {
			return Arabic
		}
	}
	return English
}

type topicKeywords struct {
	topic    string
	keywords []string
}

// topicTable order is the tie-break order.
var topicTable = []topicKeywords{
	{"rsvp", []string{"rsvp", "confirm", "attend", "coming", "decline", "response", "حضور", "تأكيد"}},
	{"schedule", []string{"schedule", "time", "when", "agenda", "program", "event", "جدول", "موعد", "متى"}},
	{"venue", []string{"venue", "location", "where", "address", "map", "direction", "مكان", "عنوان", "أين"}},
	{"hotel", []string{"hotel", "stay", "accommodation", "room", "book", "فندق", "إقامة", "حجز"}},
	{"travel", []string{"travel", "flight", "airport", "pickup", "transport", "سفر", "طيران", "مطار"}},
	{"dress_code", []string{"dress", "wear", "outfit", "attire", "color", "ملابس", "لبس"}},
	{"food", []string{"food", "menu", "eat", "diet", "vegetarian", "halal", "طعام", "أكل", "قائمة"}},
	{"activities", []string{"activity", "activities", "event", "party", "henna", "أنشطة", "فعالية", "حفلة"}},
	{"gift", []string{"gift", "present", "registry", "هدية", "هدايا"}},
	{"general", []string{"help", "hello", "hi", "thanks", "مساعدة", "مرحبا", "شكرا"}},
}

// Topics lists every topic DetectTopic can return, in tie-break order.
func Topics() []string {
	out := make([]string, len(topicTable))
	for i, t := range topicTable {
		out[i] = t.topic
	}
	return out
}

// DetectTopic scores each topic by how many of its keywords occur as
// substrings of the lower-cased message. The highest non-zero score wins and
// ties go to the earlier topic. Returns false when nothing matches.
func DetectTopic(message string) (string, bool) {
	lower := strings.ToLower(message)

	best, bestScore := "", 0
	for _, entry := range topicTable {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = entry.topic, score
		}
	}
	return best, bestScore > 0
}

var unansweredPhrases = []string{
	"i don't know",
	"i'm not sure",
	"don't have information",
	"لا أعرف",
	"لست متأكد",
}

// CouldNotAnswer flags replies in which the model admits it lacks the answer.
func CouldNotAnswer(response string) bool {
	lower := strings.ToLower(response)
	for _, phrase := range unansweredPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// FallbackMessage is returned to the guest when the model cannot be reached.
func FallbackMessage(lang Language) string {
	if lang == Arabic {
		return "أواجه مشكلة حالياً. يرجى المحاولة مرة أخرى بعد قليل."
	}
	return "I'm having trouble right now. Please try again in a moment."
}
