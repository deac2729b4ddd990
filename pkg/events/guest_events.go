package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeRSVPUpdated          = "guest.rsvp_updated"
	TypeTokenRotated         = "guest.token_rotated"
	TypeActivityRegistered   = "activity.registered"
	TypeActivityUnregistered = "activity.unregistered"
	TypeMediaUploaded        = "media.uploaded"
)

func newEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{Type: eventType, Data: data, OccurredAt: time.Now().UTC()}
}

func RSVPUpdated(weddingId, guestId uuid.UUID, status string, attendees int) BaseEvent {
	return newEvent(TypeRSVPUpdated, map[string]interface{}{
		"wedding_id":          weddingId.String(),
		"guest_id":            guestId.String(),
		"rsvp_status":         status,
		"number_of_attendees": attendees,
	})
}

// TokenRotated never carries the token itself.
func TokenRotated(weddingId, guestId uuid.UUID) BaseEvent {
	return newEvent(TypeTokenRotated, map[string]interface{}{
		"wedding_id": weddingId.String(),
		"guest_id":   guestId.String(),
	})
}

func ActivityRegistered(weddingId, guestId, activityId uuid.UUID, participants int) BaseEvent {
	return newEvent(TypeActivityRegistered, map[string]interface{}{
		"wedding_id":             weddingId.String(),
		"guest_id":               guestId.String(),
		"activity_id":            activityId.String(),
		"number_of_participants": participants,
	})
}

func ActivityUnregistered(weddingId, guestId, activityId uuid.UUID) BaseEvent {
	return newEvent(TypeActivityUnregistered, map[string]interface{}{
		"wedding_id":  weddingId.String(),
		"guest_id":    guestId.String(),
		"activity_id": activityId.String(),
	})
}

func MediaUploaded(weddingId, guestId, mediaId uuid.UUID, fileType string) BaseEvent {
	return newEvent(TypeMediaUploaded, map[string]interface{}{
		"wedding_id": weddingId.String(),
		"guest_id":   guestId.String(),
		"media_id":   mediaId.String(),
		"file_type":  fileType,
	})
}
