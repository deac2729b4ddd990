package assistant

import (
	"fmt"
	"strings"
	"time"
)

const DefaultBotName = "Rada"

type WeddingFacts struct {
	CoupleNames  string
	Date         *time.Time
	VenueName    string
	VenueAddress string
	VenueCity    string
	VenueCountry string
	Schedule     []ScheduleItem
	Hotels       []HotelItem
}

type ScheduleItem struct {
	Name      string
	At        *time.Time
	Location  string
	DressCode string
	Food      string
}

type HotelItem struct {
	Name       string
	Stars      *int
	PriceRange string
	Distance   string
}

type GuestFacts struct {
	Name       string
	RSVPStatus string
	Attendees  int
	Travel     *TravelFacts
	Hotel      *HotelFacts
	Activities []string
}

type TravelFacts struct {
	Arriving    *time.Time
	Departing   *time.Time
	NeedsPickup bool
}

type HotelFacts struct {
	CustomName string
}

func orTBD(s string) string {
	if strings.TrimSpace(s) == "" {
		return "TBD"
	}
	return s
}

func (w WeddingFacts) render() string {
	var b strings.Builder

	date := "TBD"
	if w.Date != nil {
		date = w.Date.Format("January 02, 2006")
	}
	fmt.Fprintf(&b, "Wedding: %s\n", w.CoupleNames)
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Venue: %s\n", orTBD(w.VenueName))
	if w.VenueAddress != "" {
		fmt.Fprintf(&b, "Address: %s\n", w.VenueAddress)
	}
	if w.VenueCity != "" {
		fmt.Fprintf(&b, "City: %s, %s\n", w.VenueCity, w.VenueCountry)
	}

	if len(w.Schedule) > 0 {
		b.WriteString("\nWedding Schedule:\n")
		for _, item := range w.Schedule {
			when := "TBD"
			if item.At != nil {
				when = item.At.Format("January 02 at 03:04 PM")
			}
			fmt.Fprintf(&b, "  - %s: %s", item.Name, when)
			if item.Location != "" {
				fmt.Fprintf(&b, " at %s", item.Location)
			}
			b.WriteString("\n")
			if item.DressCode != "" {
				fmt.Fprintf(&b, "    Dress code: %s\n", item.DressCode)
			}
			if item.Food != "" {
				fmt.Fprintf(&b, "    Food: %s\n", item.Food)
			}
		}
	}

	if len(w.Hotels) > 0 {
		b.WriteString("\nRecommended Hotels:\n")
		for _, h := range w.Hotels {
			fmt.Fprintf(&b, "  - %s", h.Name)
			if h.Stars != nil && *h.Stars > 0 {
				fmt.Fprintf(&b, " (%d stars)", *h.Stars)
			}
			if h.PriceRange != "" {
				fmt.Fprintf(&b, " - %s", h.PriceRange)
			}
			if h.Distance != "" {
				fmt.Fprintf(&b, ", %s from venue", h.Distance)
			}
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (g GuestFacts) render() string {
	var b strings.Builder

	status := g.RSVPStatus
	if status == "" {
		status = "pending"
	}
	fmt.Fprintf(&b, "Guest Name: %s\n", g.Name)
	fmt.Fprintf(&b, "RSVP Status: %s\n", status)
	if g.Attendees > 0 {
		fmt.Fprintf(&b, "Number of attendees: %d\n", g.Attendees)
	}

	if g.Travel != nil {
		b.WriteString("Travel Info: Submitted\n")
		if g.Travel.Arriving != nil {
			fmt.Fprintf(&b, "  Arriving: %s\n", g.Travel.Arriving.Format("January 02"))
		}
		if g.Travel.Departing != nil {
			fmt.Fprintf(&b, "  Departing: %s\n", g.Travel.Departing.Format("January 02"))
		}
		if g.Travel.NeedsPickup {
			b.WriteString("  Needs airport pickup: Yes\n")
		}
	} else {
		b.WriteString("Travel Info: Not submitted yet\n")
	}

	if g.Hotel != nil {
		b.WriteString("Hotel: Preference submitted\n")
		if g.Hotel.CustomName != "" {
			fmt.Fprintf(&b, "  Hotel: %s\n", g.Hotel.CustomName)
		}
	} else {
		b.WriteString("Hotel: Not chosen yet\n")
	}

	if len(g.Activities) > 0 {
		b.WriteString("Registered Activities:\n")
		for _, name := range g.Activities {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
	} else {
		b.WriteString("Activities: No registrations yet\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func languageInstruction(lang Language) string {
	if lang == Arabic {
		return "IMPORTANT: Respond ONLY in Arabic (العربية). Use natural, warm Arabic. Keep responses short and helpful."
	}
	return "Respond in English. Keep responses short, warm and helpful."
}

// BuildSystemPrompt renders the read-only instructions plus the facts the
// model may answer from. guest is nil for anonymous sessions.
func BuildSystemPrompt(botName string, lang Language, wedding WeddingFacts, guest *GuestFacts) string {
	if strings.TrimSpace(botName) == "" {
		botName = DefaultBotName
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a friendly wedding assistant helping guests with questions about this wedding.\n\n", botName)

	b.WriteString("PERSONALITY:\n")
	b.WriteString("- Warm and celebratory\n")
	b.WriteString("- Concise: usually 2-4 sentences\n")
	b.WriteString("- Helpful, never pushy\n\n")

	b.WriteString(languageInstruction(lang))
	b.WriteString("\n\n")

	b.WriteString("CRITICAL RULES:\n")
	b.WriteString("- You are READ-ONLY. Never claim to change, book or update anything for the guest.\n")
	b.WriteString("- If the guest wants to change their RSVP, book a hotel or edit any detail, tell them to use the matching section of their guest portal.\n")
	b.WriteString("- Answer only from the wedding information below. If something is not there, say you don't have that information.\n")
	b.WriteString("- Never invent details about the wedding.\n")
	b.WriteString("- Politely steer unrelated questions back to the wedding.\n\n")

	b.WriteString("WEDDING INFORMATION:\n")
	b.WriteString(wedding.render())
	b.WriteString("\n")

	if guest != nil {
		b.WriteString("\nCURRENT GUEST INFORMATION (personalized context):\n")
		b.WriteString(guest.render())
		b.WriteString("\n\nUse the guest information to personalize answers, e.g. tell them their RSVP status directly when asked.\n")
	}

	return b.String()
}
