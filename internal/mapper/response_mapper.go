package mapper

import (
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
)

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

// WeddingToPublicResponse converts entity to the guest-facing view
func WeddingToPublicResponse(w *entity.Wedding) dto.WeddingPublicResponse {
	return dto.WeddingPublicResponse{
		Id:             w.Id,
		CoupleNames:    w.CoupleNames,
		WeddingDate:    w.WeddingDate,
		VenueName:      w.VenueName,
		VenueAddress:   w.VenueAddress,
		VenueCity:      w.VenueCity,
		VenueCountry:   w.VenueCountry,
		WelcomeMessage: w.WelcomeMessage,
		CoverImageUrl:  w.CoverImageUrl,
		StoryTitle:     w.StoryTitle,
		StoryContent:   w.StoryContent,
	}
}

func WeddingToResponse(w *entity.Wedding) dto.WeddingResponse {
	return dto.WeddingResponse{
		WeddingPublicResponse: WeddingToPublicResponse(w),
		AdminEmail:            w.AdminEmail,
		IsActive:              w.IsActive,
		CreatedAt:             w.CreatedAt,
		UpdatedAt:             w.UpdatedAt,
	}
}

func DashboardStatsToResponse(s *entity.DashboardStats) dto.DashboardStatsResponse {
	counts := make(map[string]int64, len(s.RSVPCounts))
	for status, n := range s.RSVPCounts {
		counts[string(status)] = n
	}
	return dto.DashboardStatsResponse{
		TotalGuests:        s.TotalGuests,
		RSVPCounts:         counts,
		ConfirmedAttendees: s.ConfirmedAttendees,
		TravelSubmitted:    s.TravelSubmitted,
		HotelSubmitted:     s.HotelSubmitted,
		MediaPending:       s.MediaPending,
		MediaTotal:         s.MediaTotal,
	}
}

// GuestToResponse fills the "country" alias from country_of_origin.
func GuestToResponse(g *entity.Guest) dto.GuestResponse {
	return dto.GuestResponse{
		Id:                g.Id,
		FullName:          g.FullName,
		Email:             g.Email,
		Phone:             g.Phone,
		CountryOfOrigin:   g.CountryOfOrigin,
		Country:           g.CountryOfOrigin,
		RSVPStatus:        string(g.RSVPStatus),
		NumberOfAttendees: g.NumberOfAttendees,
		SpecialRequests:   g.SpecialRequests,
		SongRequests:      g.SongRequests,
		NotesToCouple:     g.NotesToCouple,
		RSVPSubmittedAt:   g.RSVPSubmittedAt,
		LastAccessedAt:    g.LastAccessedAt,
		CreatedAt:         g.CreatedAt,
	}
}

func GuestToAdminResponse(g *entity.Guest, portalLink string) dto.AdminGuestResponse {
	return dto.AdminGuestResponse{
		GuestResponse: GuestToResponse(g),
		AccessToken:   g.AccessToken,
		PortalLink:    portalLink,
	}
}

func TravelInfoToResponse(t *entity.TravelInfo) *dto.TravelInfoResponse {
	if t == nil {
		return nil
	}
	return &dto.TravelInfoResponse{
		Id:                    t.Id,
		ArrivalDate:           formatDate(t.ArrivalDate),
		ArrivalTime:           t.ArrivalTime,
		ArrivalFlightNumber:   t.ArrivalFlightNumber,
		ArrivalAirport:        t.ArrivalAirport,
		DepartureDate:         formatDate(t.DepartureDate),
		DepartureTime:         t.DepartureTime,
		DepartureFlightNumber: t.DepartureFlightNumber,
		NeedsPickup:           t.NeedsPickup,
		NeedsDropoff:          t.NeedsDropoff,
		SpecialRequirements:   t.SpecialRequirements,
		UpdatedAt:             t.UpdatedAt,
	}
}

func SuggestedHotelToResponse(h *entity.SuggestedHotel) dto.SuggestedHotelResponse {
	return dto.SuggestedHotelResponse{
		Id:                h.Id,
		HotelName:         h.HotelName,
		Address:           h.Address,
		WebsiteUrl:        h.WebsiteUrl,
		Phone:             h.Phone,
		DistanceFromVenue: h.DistanceFromVenue,
		PriceRange:        h.PriceRange,
		StarRating:        h.StarRating,
		Description:       h.Description,
		Amenities:         emptyIfNil(h.Amenities),
		ImageUrls:         emptyIfNil(h.ImageUrls),
		BookingLink:       h.BookingLink,
		DisplayOrder:      h.DisplayOrder,
		IsActive:          h.IsActive,
	}
}

func SuggestedHotelsToResponse(hotels []*entity.SuggestedHotel) []dto.SuggestedHotelResponse {
	res := make([]dto.SuggestedHotelResponse, 0, len(hotels))
	for _, h := range hotels {
		res = append(res, SuggestedHotelToResponse(h))
	}
	return res
}

// HotelInfoToResponse embeds the referenced suggested hotel when given.
func HotelInfoToResponse(h *entity.HotelInfo, suggested *entity.SuggestedHotel) *dto.HotelInfoResponse {
	if h == nil {
		return nil
	}
	res := &dto.HotelInfoResponse{
		Id:                  h.Id,
		SuggestedHotelId:    h.SuggestedHotelId,
		CustomHotelName:     h.CustomHotelName,
		CustomHotelAddress:  h.CustomHotelAddress,
		CheckInDate:         formatDate(h.CheckInDate),
		CheckOutDate:        formatDate(h.CheckOutDate),
		RoomType:            h.RoomType,
		NumberOfRooms:       h.NumberOfRooms,
		SpecialRequests:     h.SpecialRequests,
		BookingConfirmation: h.BookingConfirmation,
		UpdatedAt:           h.UpdatedAt,
	}
	if suggested != nil {
		s := SuggestedHotelToResponse(suggested)
		res.SuggestedHotel = &s
	}
	return res
}

func FoodPreferenceToResponse(p *entity.GuestFoodPreference) *dto.FoodPreferenceResponse {
	if p == nil {
		return nil
	}
	var mealSize *string
	if p.MealSizePreference != nil {
		s := string(*p.MealSizePreference)
		mealSize = &s
	}
	return &dto.FoodPreferenceResponse{
		Id:                  p.Id,
		DietaryRestrictions: emptyIfNil(p.DietaryRestrictions),
		Allergies:           p.Allergies,
		CuisinePreferences:  p.CuisinePreferences,
		SpecialRequests:     p.SpecialRequests,
		MealSizePreference:  mealSize,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FoodMenuToResponse(f *entity.FoodMenu) dto.FoodMenuResponse {
	return dto.FoodMenuResponse{
		Id:                      f.Id,
		EventName:               f.EventName,
		MenuItems:               emptyIfNil(f.MenuItems),
		DietaryOptionsAvailable: emptyIfNil(f.DietaryOptionsAvailable),
		Notes:                   f.Notes,
		CreatedAt:               f.CreatedAt,
	}
}

func FoodMenusToResponse(menus []*entity.FoodMenu) []dto.FoodMenuResponse {
	res := make([]dto.FoodMenuResponse, 0, len(menus))
	for _, m := range menus {
		res = append(res, FoodMenuToResponse(m))
	}
	return res
}

func SwatchesToDTO(swatches []entity.ColorSwatch) []dto.ColorSwatchDTO {
	res := make([]dto.ColorSwatchDTO, 0, len(swatches))
	for _, s := range swatches {
		res = append(res, dto.ColorSwatchDTO{Name: s.Name, Hex: s.Hex})
	}
	return res
}

func SwatchesFromDTO(swatches []dto.ColorSwatchDTO) []entity.ColorSwatch {
	res := make([]entity.ColorSwatch, 0, len(swatches))
	for _, s := range swatches {
		res = append(res, entity.ColorSwatch{Name: s.Name, Hex: s.Hex})
	}
	return res
}

func DressCodeToResponse(d *entity.DressCode) dto.DressCodeResponse {
	return dto.DressCodeResponse{
		Id:                    d.Id,
		EventName:             d.EventName,
		EventDate:             formatDate(d.EventDate),
		Description:           d.Description,
		Theme:                 d.Theme,
		ColorPalette:          SwatchesToDTO(d.ColorPalette),
		DressSuggestionsMen:   d.DressSuggestionsMen,
		DressSuggestionsWomen: d.DressSuggestionsWomen,
		ImageUrls:             emptyIfNil(d.ImageUrls),
		Notes:                 d.Notes,
		DisplayOrder:          d.DisplayOrder,
	}
}

func DressCodesToResponse(codes []*entity.DressCode) []dto.DressCodeResponse {
	res := make([]dto.DressCodeResponse, 0, len(codes))
	for _, d := range codes {
		res = append(res, DressCodeToResponse(d))
	}
	return res
}

func DressPreferenceToResponse(p *entity.GuestDressPreference) *dto.DressPreferenceResponse {
	if p == nil {
		return nil
	}
	return &dto.DressPreferenceResponse{
		Id:                       p.Id,
		DressCodeId:              p.DressCodeId,
		PlannedOutfitDescription: p.PlannedOutfitDescription,
		ColorChoice:              p.ColorChoice,
		NeedsShoppingAssistance:  p.NeedsShoppingAssistance,
		Notes:                    p.Notes,
		UpdatedAt:                p.UpdatedAt,
	}
}

// ActivityToResponse fills the "title" and "capacity" aliases and the
// remaining seats when the activity is capped.
func ActivityToResponse(a *entity.Activity, currentParticipants int) dto.ActivityResponse {
	res := dto.ActivityResponse{
		Id:                  a.Id,
		ActivityName:        a.ActivityName,
		Title:               a.ActivityName,
		Description:         a.Description,
		EventDay:            a.EventDay,
		DateTime:            a.DateTime,
		DurationMinutes:     a.DurationMinutes,
		Location:            a.Location,
		MaxParticipants:     a.MaxParticipants,
		Capacity:            a.MaxParticipants,
		IsOptional:          a.IsOptional,
		RequiresSignup:      a.RequiresSignup,
		ImageUrl:            a.ImageUrl,
		Notes:               a.Notes,
		DisplayOrder:        a.DisplayOrder,
		DressCodeInfo:       a.DressCodeInfo,
		DressColors:         SwatchesToDTO(a.DressColors),
		FoodDescription:     a.FoodDescription,
		DietaryOptions:      emptyIfNil(a.DietaryOptions),
		CurrentParticipants: currentParticipants,
	}
	if a.MaxParticipants != nil {
		left := *a.MaxParticipants - currentParticipants
		if left < 0 {
			left = 0
		}
		res.SpotsLeft = &left
	}
	return res
}

func RegistrationToResponse(r *entity.GuestActivity) *dto.RegistrationResponse {
	if r == nil {
		return nil
	}
	return &dto.RegistrationResponse{
		Id:                   r.Id,
		ActivityId:           r.ActivityId,
		NumberOfParticipants: r.NumberOfParticipants,
		Notes:                r.Notes,
		RegisteredAt:         r.RegisteredAt,
	}
}

func MediaToResponse(m *entity.MediaUpload) dto.MediaResponse {
	return dto.MediaResponse{
		Id:           m.Id,
		GuestId:      m.GuestId,
		FileType:     string(m.FileType),
		FileName:     m.FileName,
		FileUrl:      m.FileUrl,
		FileSize:     m.FileSize,
		ThumbnailUrl: m.ThumbnailUrl,
		Caption:      m.Caption,
		EventTag:     m.EventTag,
		IsApproved:   m.IsApproved,
		UploadedAt:   m.UploadedAt,
		ApprovedAt:   m.ApprovedAt,
	}
}

func MediaListToResponse(uploads []*entity.MediaUpload) []dto.MediaResponse {
	res := make([]dto.MediaResponse, 0, len(uploads))
	for _, m := range uploads {
		res = append(res, MediaToResponse(m))
	}
	return res
}

func ChatbotSettingsToResponse(s *entity.ChatbotSettings) dto.ChatbotSettingsResponse {
	return dto.ChatbotSettingsResponse{
		ChatbotName:          s.ChatbotName,
		GreetingMessageEn:    s.GreetingMessageEn,
		GreetingMessageAr:    s.GreetingMessageAr,
		SuggestedQuestionsEn: emptyIfNil(s.SuggestedQuestionsEn),
		SuggestedQuestionsAr: emptyIfNil(s.SuggestedQuestionsAr),
	}
}

func ChatbotStatsToResponse(s *entity.ChatbotStats) dto.ChatbotStatsResponse {
	return dto.ChatbotStatsResponse{
		TotalMessages:   s.TotalMessages,
		UniqueSessions:  s.UniqueSessions,
		UnansweredCount: s.UnansweredCount,
		Topics:          s.Topics,
		Languages:       s.Languages,
		HelpfulCount:    s.HelpfulCount,
		RatedCount:      s.RatedCount,
		HelpfulRate:     s.HelpfulRate(),
	}
}

func ChatLogToResponse(l *entity.ChatbotLog) dto.ChatLogResponse {
	return dto.ChatLogResponse{
		Id:             l.Id,
		GuestId:        l.GuestId,
		SessionId:      l.SessionId,
		UserMessage:    l.UserMessage,
		BotResponse:    l.BotResponse,
		Language:       l.Language,
		TopicDetected:  l.TopicDetected,
		WasHelpful:     l.WasHelpful,
		CouldNotAnswer: l.CouldNotAnswer,
		CreatedAt:      l.CreatedAt,
	}
}
