package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMediaController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Approve(ctx *fiber.Ctx) error
	Reject(ctx *fiber.Ctx) error
}

type mediaController struct {
	service service.IMediaService
}

func NewMediaController(service service.IMediaService) IMediaController {
	return &mediaController{service: service}
}

func (c *mediaController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin/media")
	h.Use(auth)
	h.Get("", c.List)
	h.Put("/:id/approve", c.Approve)
	h.Delete("/:id", c.Reject)
}

func (c *mediaController) List(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.ListMediaRequest
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
	return ctx.JSON(serverutils.SuccessResponse("Success get media", res))
}

func (c *mediaController) Approve(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Approve(ctx.UserContext(), weddingId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Media approved", res))
}

func (c *mediaController) Reject(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.service.Reject(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Media rejected", nil))
}
