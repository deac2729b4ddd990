package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWeddingController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	DashboardStats(ctx *fiber.Ctx) error
}

type weddingController struct {
	service service.IWeddingService
}

func NewWeddingController(service service.IWeddingService) IWeddingController {
	return &weddingController{service: service}
}

func (c *weddingController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin/wedding")
	h.Use(auth)
	h.Get("", c.Show)
	h.Put("", c.Update)
	h.Get("/dashboard-stats", c.DashboardStats)
}

func (c *weddingController) Show(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Get(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get wedding", res))
}

func (c *weddingController) Update(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateWeddingRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Wedding updated", res))
}

func (c *weddingController) DashboardStats(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DashboardStats(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dashboard stats", res))
}
