package controller

import (
	"strconv"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// IAdminController covers the chatbot back office and the system log viewer.
type IAdminController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	GetChatbotSettings(ctx *fiber.Ctx) error
	UpdateChatbotSettings(ctx *fiber.Ctx) error
	GetChatbotStats(ctx *fiber.Ctx) error
	GetChatLogs(ctx *fiber.Ctx) error
	GetLogs(ctx *fiber.Ctx) error
}

type adminController struct {
	service          service.IAdminService
	assistantService service.IAssistantService
}

func NewAdminController(service service.IAdminService, assistantService service.IAssistantService) IAdminController {
	return &adminController{service: service, assistantService: assistantService}
}

func (c *adminController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin")

	chatbot := h.Group("/chatbot", auth)
	chatbot.Get("/settings", c.GetChatbotSettings)
	chatbot.Put("/settings", c.UpdateChatbotSettings)
	chatbot.Get("/stats", c.GetChatbotStats)
	chatbot.Get("/logs", c.GetChatLogs)

	h.Get("/system/logs", auth, c.GetLogs)
}

func (c *adminController) GetChatbotSettings(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Settings(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot settings", res))
}

func (c *adminController) UpdateChatbotSettings(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateChatbotSettingsRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.assistantService.UpdateSettings(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot settings updated", res))
}

func (c *adminController) GetChatbotStats(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Stats(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chatbot stats", res))
}

func (c *adminController) GetChatLogs(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}

	var req dto.ListChatLogsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query")
	}
	if err := serverutils.ValidateRequest(&req); err != nil {
		return err
	}

	res, err := c.assistantService.Logs(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Chat logs", res))
}

func (c *adminController) GetLogs(ctx *fiber.Ctx) error {
	page, _ := strconv.Atoi(ctx.Query("page", "1"))
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	level := ctx.Query("level", "")

	logs, err := c.service.GetSystemLogs(ctx.UserContext(), page, limit, level)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("System logs", logs))
}
