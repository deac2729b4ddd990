package entity

type DashboardStats struct {
	TotalGuests        int64
	RSVPCounts         map[RSVPStatus]int64
	ConfirmedAttendees int64
	TravelSubmitted    int64
	HotelSubmitted     int64
	MediaPending       int64
	MediaTotal         int64
}
