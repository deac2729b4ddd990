package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	List(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Registrations(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin/activities")
	h.Use(auth)
	h.Get("", c.List)
	h.Post("", c.Create)
	h.Get("/:id", c.Show)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
	h.Get("/:id/registrations", c.Registrations)
}

func (c *activityController) List(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.List(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get activities", res))
}

func (c *activityController) Create(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.ActivityRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Activity created", res))
}

func (c *activityController) Show(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse("Success get activity", res))
}

func (c *activityController) Update(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dto.ActivityRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), weddingId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Activity updated", res))
}

func (c *activityController) Delete(ctx *fiber.Ctx) error {
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
	return ctx.JSON(serverutils.SuccessResponse[any]("Activity deleted", nil))
}

func (c *activityController) Registrations(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	res, err := c.service.Registrations(ctx.UserContext(), weddingId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get registrations", res))
}
