package controller

import (
	"strings"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/entity"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IPortalController is the token-addressed guest surface. The path token is
// the only credential.
type IPortalController interface {
	RegisterRoutes(r fiber.Router)
	Snapshot(ctx *fiber.Ctx) error
	SubmitRSVP(ctx *fiber.Ctx) error
	UpdateTravel(ctx *fiber.Ctx) error
	UpdateHotel(ctx *fiber.Ctx) error
	UpdateFood(ctx *fiber.Ctx) error
	UpdateDress(ctx *fiber.Ctx) error
	Activities(ctx *fiber.Ctx) error
	DressCodes(ctx *fiber.Ctx) error
	Register(ctx *fiber.Ctx) error
	Unregister(ctx *fiber.Ctx) error
	UploadMedia(ctx *fiber.Ctx) error
	ListMedia(ctx *fiber.Ctx) error
	DeleteMedia(ctx *fiber.Ctx) error
}

type portalController struct {
	access        service.IGuestAccessService
	portal        service.IPortalService
	preferences   service.IPreferenceService
	registrations service.IActivityRegistrationService
	rsvp          service.IRSVPService
	media         service.IMediaService
}

func NewPortalController(
	access service.IGuestAccessService,
	portal service.IPortalService,
	preferences service.IPreferenceService,
	registrations service.IActivityRegistrationService,
	rsvp service.IRSVPService,
	media service.IMediaService,
) IPortalController {
	return &portalController{
		access:        access,
		portal:        portal,
		preferences:   preferences,
		registrations: registrations,
		rsvp:          rsvp,
		media:         media,
	}
}

func (c *portalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/guest/:token")
	h.Get("", c.Snapshot)
	h.Put("/rsvp", c.SubmitRSVP)
	h.Put("/travel", c.UpdateTravel)
	h.Put("/hotel", c.UpdateHotel)
	h.Put("/food-preference", c.UpdateFood)
	h.Put("/dress-preference", c.UpdateDress)
	h.Get("/activities", c.Activities)
	h.Get("/dress-codes", c.DressCodes)
	h.Post("/activities/:activity_id/register", c.Register)
	h.Delete("/activities/:activity_id/unregister", c.Unregister)
	h.Post("/media/upload", c.UploadMedia)
	h.Get("/media", c.ListMedia)
	h.Delete("/media/:media_id", c.DeleteMedia)
}

func (c *portalController) resolve(ctx *fiber.Ctx) (*entity.Wedding, *entity.Guest, error) {
	return c.access.Resolve(ctx.UserContext(), ctx.Params("token"))
}

func (c *portalController) Snapshot(ctx *fiber.Ctx) error {
	wedding, guest, err := c.access.ResolveForPortal(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		return err
	}

	res, err := c.portal.Snapshot(ctx.UserContext(), wedding, guest)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get portal", res))
}

func (c *portalController) SubmitRSVP(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	var req dto.UpdateRSVPRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.rsvp.Submit(ctx.UserContext(), guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("RSVP saved", res))
}

func (c *portalController) UpdateTravel(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	var req dto.TravelInfoRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.preferences.UpsertTravel(ctx.UserContext(), guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Travel info saved", res))
}

func (c *portalController) UpdateHotel(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	var req dto.HotelInfoRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.preferences.UpsertHotel(ctx.UserContext(), guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hotel info saved", res))
}

func (c *portalController) UpdateFood(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	var req dto.FoodPreferenceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.preferences.UpsertFood(ctx.UserContext(), guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Food preference saved", res))
}

func (c *portalController) UpdateDress(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	var req dto.DressPreferenceRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.preferences.UpsertDress(ctx.UserContext(), guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dress preference saved", res))
}

func (c *portalController) Activities(ctx *fiber.Ctx) error {
	wedding, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}

	res, err := c.portal.Activities(ctx.UserContext(), wedding, guest)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get activities", res))
}

func (c *portalController) DressCodes(ctx *fiber.Ctx) error {
	wedding, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}

	res, err := c.portal.DressCodes(ctx.UserContext(), wedding, guest)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dress codes", res))
}

func (c *portalController) Register(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	activityId, err := uuidParam(ctx, "activity_id")
	if err != nil {
		return err
	}
	var req dto.RegisterActivityRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.registrations.Register(ctx.UserContext(), guest, activityId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registered for activity", res))
}

func (c *portalController) Unregister(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	activityId, err := uuidParam(ctx, "activity_id")
	if err != nil {
		return err
	}

	if err := c.registrations.Unregister(ctx.UserContext(), guest, activityId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Unregistered from activity", nil))
}

func (c *portalController) UploadMedia(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}

	header, err := ctx.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "File is required")
	}
	file, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Unable to read file")
	}
	defer file.Close()

	req := &dto.UploadMediaRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get(fiber.HeaderContentType),
		Size:        header.Size,
		Reader:      file,
		Caption:     formValue(ctx, "caption"),
		EventTag:    formValue(ctx, "event_tag"),
	}

	res, err := c.media.Upload(ctx.UserContext(), guest, req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Media uploaded", res))
}

func (c *portalController) ListMedia(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}

	res, err := c.portal.Media(ctx.UserContext(), guest)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get media", res))
}

func (c *portalController) DeleteMedia(ctx *fiber.Ctx) error {
	_, guest, err := c.resolve(ctx)
	if err != nil {
		return err
	}
	mediaId, err := uuidParam(ctx, "media_id")
	if err != nil {
		return err
	}

	if err := c.media.DeleteOwn(ctx.UserContext(), guest, mediaId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Media deleted", nil))
}

func formValue(ctx *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(ctx.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
