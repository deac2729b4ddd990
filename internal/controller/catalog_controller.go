package controller

import (
	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"
	"wedding-portal-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ICatalogController serves the per-wedding hotel, dress code and menu lists.
type ICatalogController interface {
	RegisterRoutes(r fiber.Router, auth fiber.Handler)
	ListHotels(ctx *fiber.Ctx) error
	CreateHotel(ctx *fiber.Ctx) error
	UpdateHotel(ctx *fiber.Ctx) error
	DeleteHotel(ctx *fiber.Ctx) error
	ReorderHotels(ctx *fiber.Ctx) error
	ListDressCodes(ctx *fiber.Ctx) error
	CreateDressCode(ctx *fiber.Ctx) error
	UpdateDressCode(ctx *fiber.Ctx) error
	DeleteDressCode(ctx *fiber.Ctx) error
	ListFoodMenus(ctx *fiber.Ctx) error
	CreateFoodMenu(ctx *fiber.Ctx) error
	UpdateFoodMenu(ctx *fiber.Ctx) error
	DeleteFoodMenu(ctx *fiber.Ctx) error
	GuestFoodPreferences(ctx *fiber.Ctx) error
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	h := r.Group("/admin")

	hotels := h.Group("/hotels", auth)
	hotels.Get("", c.ListHotels)
	hotels.Post("", c.CreateHotel)
	hotels.Put("/reorder", c.ReorderHotels)
	hotels.Put("/:id", c.UpdateHotel)
	hotels.Delete("/:id", c.DeleteHotel)

	dress := h.Group("/dress-codes", auth)
	dress.Get("", c.ListDressCodes)
	dress.Post("", c.CreateDressCode)
	dress.Put("/:id", c.UpdateDressCode)
	dress.Delete("/:id", c.DeleteDressCode)

	menus := h.Group("/food-menus", auth)
	menus.Get("", c.ListFoodMenus)
	menus.Post("", c.CreateFoodMenu)
	menus.Put("/:id", c.UpdateFoodMenu)
	menus.Delete("/:id", c.DeleteFoodMenu)

	h.Get("/food-preferences", auth, c.GuestFoodPreferences)
}

func (c *catalogController) ListHotels(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListHotels(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get hotels", res))
}

func (c *catalogController) CreateHotel(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	var req dto.SuggestedHotelRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.CreateHotel(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Hotel created", res))
}

func (c *catalogController) UpdateHotel(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.SuggestedHotelRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateHotel(ctx.UserContext(), weddingId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hotel updated", res))
}

func (c *catalogController) DeleteHotel(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.DeleteHotel(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Hotel deleted", nil))
}

func (c *catalogController) ReorderHotels(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	var req dto.ReorderRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.ReorderHotels(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Hotels reordered", res))
}

func (c *catalogController) ListDressCodes(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListDressCodes(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get dress codes", res))
}

func (c *catalogController) CreateDressCode(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	var req dto.DressCodeRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.CreateDressCode(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Dress code created", res))
}

func (c *catalogController) UpdateDressCode(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.DressCodeRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateDressCode(ctx.UserContext(), weddingId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Dress code updated", res))
}

func (c *catalogController) DeleteDressCode(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.DeleteDressCode(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Dress code deleted", nil))
}

func (c *catalogController) ListFoodMenus(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.ListFoodMenus(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get food menus", res))
}

func (c *catalogController) CreateFoodMenu(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	var req dto.FoodMenuRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.CreateFoodMenu(ctx.UserContext(), weddingId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Food menu created", res))
}

func (c *catalogController) UpdateFoodMenu(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dto.FoodMenuRequest
	if err := parseBody(ctx, &req); err != nil {
		return err
	}
	res, err := c.service.UpdateFoodMenu(ctx.UserContext(), weddingId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Food menu updated", res))
}

func (c *catalogController) DeleteFoodMenu(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.service.DeleteFoodMenu(ctx.UserContext(), weddingId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Food menu deleted", nil))
}

func (c *catalogController) GuestFoodPreferences(ctx *fiber.Ctx) error {
	weddingId, err := serverutils.WeddingId(ctx)
	if err != nil {
		return err
	}
	res, err := c.service.GuestFoodPreferences(ctx.UserContext(), weddingId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get food preferences", res))
}
