package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/ratelimit"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Settings(ctx *fiber.Ctx) error
	Feedback(ctx *fiber.Ctx) error
}

type chatbotController struct {
	access    service.IGuestAccessService
	assistant service.IAssistantService
	limiter   *ratelimit.ChatLimiter
}

func NewChatbotController(access service.IGuestAccessService, assistant service.IAssistantService, limiter *ratelimit.ChatLimiter) IChatbotController {
	return &chatbotController{access: access, assistant: assistant, limiter: limiter}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot")
	h.Post("/chat/:token", c.Chat)
	h.Get("/settings/:token", c.Settings)
	h.Post("/feedback", c.Feedback)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	wedding, guest, err := c.access.Resolve(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		return err
	}

	if c.limiter != nil && !c.limiter.Allow(ctx.UserContext(), guest.Id.String()) {
		return fiber.NewError(fiber.StatusTooManyRequests, "Too many messages, please slow down")
	}

	var req dto.ChatRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistant.Chat(ctx.UserContext(), wedding, guest, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *chatbotController) Settings(ctx *fiber.Ctx) error {
	wedding, _, err := c.access.Resolve(ctx.UserContext(), ctx.Params("token"))
	if err != nil {
		return err
	}

	res, err := c.assistant.Settings(ctx.UserContext(), wedding.Id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot settings", res))
}

func (c *chatbotController) Feedback(ctx *fiber.Ctx) error {
	var req dto.ChatFeedbackRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	if err := c.assistant.Feedback(ctx.UserContext(), &req); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Feedback recorded", nil))
}
