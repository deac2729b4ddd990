package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildSystemPrompt_WeddingOnly(t *testing.T) {
	date := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	ceremony := time.Date(2026, 6, 20, 17, 0, 0, 0, time.UTC)
	stars := 5

	prompt := BuildSystemPrompt("", English, WeddingFacts{
		CoupleNames: "Layla & Omar",
		Date:        &date,
		VenueName:   "Palm Garden",
		VenueCity:   "Dubai",
		Schedule: []ScheduleItem{
			{Name: "Ceremony", At: &ceremony, Location: "Main Lawn", DressCode: "Formal"},
		},
		Hotels: []HotelItem{{Name: "Sea View", Stars: &stars, Distance: "2 km"}},
	}, nil)

	assert.Contains(t, prompt, "You are Rada")
	assert.Contains(t, prompt, "Respond in English")
	assert.Contains(t, prompt, "READ-ONLY")
	assert.Contains(t, prompt, "Wedding: Layla & Omar")
	assert.Contains(t, prompt, "Date: June 20, 2026")
	assert.Contains(t, prompt, "  - Ceremony: June 20 at 05:00 PM at Main Lawn")
	assert.Contains(t, prompt, "    Dress code: Formal")
	assert.Contains(t, prompt, "  - Sea View (5 stars), 2 km from venue")
	assert.NotContains(t, prompt, "CURRENT GUEST INFORMATION")
}

func TestBuildSystemPrompt_GuestScopedArabic(t *testing.T) {
	prompt := BuildSystemPrompt("Noor", Arabic, WeddingFacts{CoupleNames: "A & B"}, &GuestFacts{
		Name:       "Sara",
		RSVPStatus: "confirmed",
		Attendees:  2,
		Activities: []string{"Henna Night"},
	})

	assert.Contains(t, prompt, "You are Noor")
	assert.Contains(t, prompt, "Respond ONLY in Arabic")
	assert.Contains(t, prompt, "Venue: TBD")
	assert.Contains(t, prompt, "CURRENT GUEST INFORMATION")
	assert.Contains(t, prompt, "RSVP Status: confirmed")
	assert.Contains(t, prompt, "Travel Info: Not submitted yet")
	assert.Contains(t, prompt, "Hotel: Not chosen yet")
	assert.Contains(t, prompt, "  - Henna Night")
}
