package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGuestController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	BulkCreate(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	RegenerateLink(ctx *fiber.Ctx) error
	SendLink(ctx *fiber.Ctx) error
}

type guestController struct {
	service service.IGuestService
}

func NewGuestController(service service.IGuestService) IGuestController {
	return &guestController{service: service}
}

func (c *guestController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin/guests")
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Post("/bulk", c.BulkCreate)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Post("/:id/regenerate-link", c.RegenerateLink)
	h.Post("/:id/send-link", c.SendLink)
}

func (c *guestController) List(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.ListGuestsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get guests", res))
}

func (c *guestController) Create(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateGuestRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Guest created", res))
}

func (c *guestController) BulkCreate(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.BulkCreateGuestsRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.BulkCreate(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Guests created", res))
}

func (c *guestController) Show(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), weddingId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get guest", res))
}

func (c *guestController) Update(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateGuestRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	req.Id = id

	res, err := c.service.Update(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Guest updated", res))
}

func (c *guestController) Delete(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Guest deleted", nil))
}

func (c *guestController) RegenerateLink(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.RegenerateLink(ctx.UserContext(), weddingId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Portal link regenerated", res))
}

func (c *guestController) SendLink(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.SendLink(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Portal link sent", nil))
}
