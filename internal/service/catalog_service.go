package service

import (
	"context"
	"strings"
	"time"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/mapper"
	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"
	"wedding-portal-be/internal/repository/specification"
	"wedding-portal-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ICatalogService manages what a wedding offers its guests: suggested
// hotels, dress codes per event and food menus.
type ICatalogService interface {
	ListHotels(ctx context.Context, weddingId uuid.UUID) ([]dto.SuggestedHotelResponse, error)
	CreateHotel(ctx context.Context, weddingId uuid.UUID, req *dto.SuggestedHotelRequest) (*dto.SuggestedHotelResponse, error)
	UpdateHotel(ctx context.Context, weddingId, hotelId uuid.UUID, req *dto.SuggestedHotelRequest) (*dto.SuggestedHotelResponse, error)
	DeleteHotel(ctx context.Context, weddingId, hotelId uuid.UUID) error
	ReorderHotels(ctx context.Context, weddingId uuid.UUID, req *dto.ReorderRequest) ([]dto.SuggestedHotelResponse, error)

	ListDressCodes(ctx context.Context, weddingId uuid.UUID) ([]dto.DressCodeResponse, error)
	CreateDressCode(ctx context.Context, weddingId uuid.UUID, req *dto.DressCodeRequest) (*dto.DressCodeResponse, error)
	UpdateDressCode(ctx context.Context, weddingId, dressCodeId uuid.UUID, req *dto.DressCodeRequest) (*dto.DressCodeResponse, error)
	DeleteDressCode(ctx context.Context, weddingId, dressCodeId uuid.UUID) error

	ListFoodMenus(ctx context.Context, weddingId uuid.UUID) ([]dto.FoodMenuResponse, error)
	CreateFoodMenu(ctx context.Context, weddingId uuid.UUID, req *dto.FoodMenuRequest) (*dto.FoodMenuResponse, error)
	UpdateFoodMenu(ctx context.Context, weddingId, menuId uuid.UUID, req *dto.FoodMenuRequest) (*dto.FoodMenuResponse, error)
	DeleteFoodMenu(ctx context.Context, weddingId, menuId uuid.UUID) error
	GuestFoodPreferences(ctx context.Context, weddingId uuid.UUID) ([]dto.GuestFoodPreferenceItem, error)
}

type catalogService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewCatalogService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) ICatalogService {
	return &catalogService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

// Suggested hotels

func applyHotelRequest(h *entity.SuggestedHotel, req *dto.SuggestedHotelRequest) error {
	name := strings.TrimSpace(req.HotelName)
	if name == "" {
		return apperror.InvalidArgument("hotel_name is required")
	}
	if req.StarRating != nil && (*req.StarRating < 1 || *req.StarRating > 5) {
		return apperror.InvalidArgument("star_rating must be between 1 and 5")
	}

	h.HotelName = name
	h.Address = req.Address
	h.WebsiteUrl = req.WebsiteUrl
	h.Phone = req.Phone
	h.DistanceFromVenue = req.DistanceFromVenue
	h.PriceRange = req.PriceRange
	h.StarRating = req.StarRating
	h.Description = req.Description
	h.Amenities = req.Amenities
	h.ImageUrls = req.ImageUrls
	h.BookingLink = req.BookingLink
	h.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		h.IsActive = *req.IsActive
	}
	return nil
}

func (s *catalogService) findHotel(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, hotelId uuid.UUID) (*entity.SuggestedHotel, error) {
	hotel, err := uow.SuggestedHotelRepository().FindOne(ctx,
		specification.ByID{ID: hotelId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, apperror.NotFound("suggested hotel not found")
	}
	return hotel, nil
}

func (s *catalogService) ListHotels(ctx context.Context, weddingId uuid.UUID) ([]dto.SuggestedHotelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	hotels, err := uow.SuggestedHotelRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: weddingId},
		specification.OrderBy{Field: "display_order"},
	)
	if err != nil {
		return nil, err
	}
	return mapper.SuggestedHotelsToResponse(hotels), nil
}

func (s *catalogService) CreateHotel(ctx context.Context, weddingId uuid.UUID, req *dto.SuggestedHotelRequest) (*dto.SuggestedHotelResponse, error) {
	hotel := &entity.SuggestedHotel{WeddingId: weddingId, IsActive: true}
	if err := applyHotelRequest(hotel, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SuggestedHotelRepository().Create(ctx, hotel); err != nil {
		return nil, err
	}
	res := mapper.SuggestedHotelToResponse(hotel)
	return &res, nil
}

func (s *catalogService) UpdateHotel(ctx context.Context, weddingId, hotelId uuid.UUID, req *dto.SuggestedHotelRequest) (*dto.SuggestedHotelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	hotel, err := s.findHotel(ctx, uow, weddingId, hotelId)
	if err != nil {
		return nil, err
	}
	if err := applyHotelRequest(hotel, req); err != nil {
		return nil, err
	}
	if err := uow.SuggestedHotelRepository().Update(ctx, hotel); err != nil {
		return nil, err
	}
	res := mapper.SuggestedHotelToResponse(hotel)
	return &res, nil
}

// DeleteHotel leaves guests' hotel info in place without the reference.
func (s *catalogService) DeleteHotel(ctx context.Context, weddingId, hotelId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	hotel, err := s.findHotel(ctx, uow, weddingId, hotelId)
	if err != nil {
		return err
	}
	if err := uow.SuggestedHotelRepository().Delete(ctx, hotel.Id); err != nil {
		return err
	}
	return uow.Commit()
}

func (s *catalogService) ReorderHotels(ctx context.Context, weddingId uuid.UUID, req *dto.ReorderRequest) ([]dto.SuggestedHotelResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	for _, item := range req.Items {
		if err := uow.SuggestedHotelRepository().UpdateDisplayOrder(ctx, weddingId, item.Id, item.DisplayOrder); err != nil {
			return nil, err
		}
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return s.ListHotels(ctx, weddingId)
}

// Dress codes

func applyDressCodeRequest(d *entity.DressCode, req *dto.DressCodeRequest) error {
	name := strings.TrimSpace(req.EventName)
	if name == "" {
		return apperror.InvalidArgument("event_name is required")
	}

	d.EventDate = nil
	if req.EventDate != nil && strings.TrimSpace(*req.EventDate) != "" {
		date, err := time.Parse(dateLayout, strings.TrimSpace(*req.EventDate))
		if err != nil {
			return apperror.InvalidArgument("event_date must be a date in YYYY-MM-DD format")
		}
		d.EventDate = &date
	}

	d.EventName = name
	d.Description = req.Description
	d.Theme = req.Theme
	d.ColorPalette = mapper.SwatchesFromDTO(req.ColorPalette)
	d.DressSuggestionsMen = req.DressSuggestionsMen
	d.DressSuggestionsWomen = req.DressSuggestionsWomen
	d.ImageUrls = req.ImageUrls
	d.Notes = req.Notes
	d.DisplayOrder = req.DisplayOrder
	return nil
}

func (s *catalogService) findDressCode(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, dressCodeId uuid.UUID) (*entity.DressCode, error) {
	code, err := uow.DressCodeRepository().FindOne(ctx,
		specification.ByID{ID: dressCodeId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if code == nil {
		return nil, apperror.NotFound("dress code not found")
	}
	return code, nil
}

func (s *catalogService) ListDressCodes(ctx context.Context, weddingId uuid.UUID) ([]dto.DressCodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	codes, err := uow.DressCodeRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: weddingId},
		specification.OrderBy{Field: "display_order"},
		specification.OrderBy{Field: "event_date"},
	)
	if err != nil {
		return nil, err
	}
	return mapper.DressCodesToResponse(codes), nil
}

func (s *catalogService) CreateDressCode(ctx context.Context, weddingId uuid.UUID, req *dto.DressCodeRequest) (*dto.DressCodeResponse, error) {
	code := &entity.DressCode{WeddingId: weddingId}
	if err := applyDressCodeRequest(code, req); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DressCodeRepository().Create(ctx, code); err != nil {
		return nil, err
	}
	res := mapper.DressCodeToResponse(code)
	return &res, nil
}

func (s *catalogService) UpdateDressCode(ctx context.Context, weddingId, dressCodeId uuid.UUID, req *dto.DressCodeRequest) (*dto.DressCodeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	code, err := s.findDressCode(ctx, uow, weddingId, dressCodeId)
	if err != nil {
		return nil, err
	}
	if err := applyDressCodeRequest(code, req); err != nil {
		return nil, err
	}
	if err := uow.DressCodeRepository().Update(ctx, code); err != nil {
		return nil, err
	}
	res := mapper.DressCodeToResponse(code)
	return &res, nil
}

func (s *catalogService) DeleteDressCode(ctx context.Context, weddingId, dressCodeId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	code, err := s.findDressCode(ctx, uow, weddingId, dressCodeId)
	if err != nil {
		return err
	}
	if err := uow.GuestDressPreferenceRepository().DeleteByDressCodeId(ctx, code.Id); err != nil {
		return err
	}
	if err := uow.DressCodeRepository().Delete(ctx, code.Id); err != nil {
		return err
	}
	return uow.Commit()
}

// Food menus

func (s *catalogService) findFoodMenu(ctx context.Context, uow unitofwork.UnitOfWork, weddingId, menuId uuid.UUID) (*entity.FoodMenu, error) {
	menu, err := uow.FoodMenuRepository().FindOne(ctx,
		specification.ByID{ID: menuId},
		specification.OwnedByWedding{WeddingID: weddingId},
	)
	if err != nil {
		return nil, err
	}
	if menu == nil {
		return nil, apperror.NotFound("food menu not found")
	}
	return menu, nil
}

func (s *catalogService) ListFoodMenus(ctx context.Context, weddingId uuid.UUID) ([]dto.FoodMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	menus, err := uow.FoodMenuRepository().FindAll(ctx,
		specification.OwnedByWedding{WeddingID: weddingId},
		specification.OrderBy{Field: "created_at"},
	)
	if err != nil {
		return nil, err
	}
	return mapper.FoodMenusToResponse(menus), nil
}

func (s *catalogService) CreateFoodMenu(ctx context.Context, weddingId uuid.UUID, req *dto.FoodMenuRequest) (*dto.FoodMenuResponse, error) {
	menu := &entity.FoodMenu{
		WeddingId:               weddingId,
		EventName:               req.EventName,
		MenuItems:               req.MenuItems,
		DietaryOptionsAvailable: req.DietaryOptionsAvailable,
		Notes:                   req.Notes,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.FoodMenuRepository().Create(ctx, menu); err != nil {
		return nil, err
	}
	res := mapper.FoodMenuToResponse(menu)
	return &res, nil
}

func (s *catalogService) UpdateFoodMenu(ctx context.Context, weddingId, menuId uuid.UUID, req *dto.FoodMenuRequest) (*dto.FoodMenuResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	menu, err := s.findFoodMenu(ctx, uow, weddingId, menuId)
	if err != nil {
		return nil, err
	}

	menu.EventName = req.EventName
	menu.MenuItems = req.MenuItems
	menu.DietaryOptionsAvailable = req.DietaryOptionsAvailable
	menu.Notes = req.Notes

	if err := uow.FoodMenuRepository().Update(ctx, menu); err != nil {
		return nil, err
	}
	res := mapper.FoodMenuToResponse(menu)
	return &res, nil
}

func (s *catalogService) DeleteFoodMenu(ctx context.Context, weddingId, menuId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	menu, err := s.findFoodMenu(ctx, uow, weddingId, menuId)
	if err != nil {
		return err
	}
	return uow.FoodMenuRepository().Delete(ctx, menu.Id)
}

func (s *catalogService) GuestFoodPreferences(ctx context.Context, weddingId uuid.UUID) ([]dto.GuestFoodPreferenceItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	prefs, err := uow.GuestFoodPreferenceRepository().FindAll(ctx, specification.GuestsOfWedding{WeddingID: weddingId})
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return []dto.GuestFoodPreferenceItem{}, nil
	}

	guestIds := make([]uuid.UUID, 0, len(prefs))
	for _, p := range prefs {
		guestIds = append(guestIds, p.GuestId)
	}
	guests, err := uow.GuestRepository().FindAll(ctx, specification.ByIDs{IDs: guestIds})
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(guests))
	for _, g := range guests {
		names[g.Id] = g.FullName
	}

	res := make([]dto.GuestFoodPreferenceItem, 0, len(prefs))
	for _, p := range prefs {
		res = append(res, dto.GuestFoodPreferenceItem{
			GuestId:    p.GuestId,
			GuestName:  names[p.GuestId],
			Preference: *mapper.FoodPreferenceToResponse(p),
		})
	}
	return res, nil
}
