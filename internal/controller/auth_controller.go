package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Me(ctx *fiber.Ctx) error
	ChangePassword(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Get("/me", auth, c.Me)
	h.Put("/change-password", auth, c.ChangePassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterWeddingRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Register(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Wedding registered", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Login(ctx.UserContext(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Me(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Me(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.ChangePasswordRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.service.ChangePassword(ctx.UserContext(), weddingId, &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}
