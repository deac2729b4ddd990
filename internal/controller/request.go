package controller

import (
	"bytes"

	"wedding-portal-be/internal/dto"
	"wedding-portal-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// parseBody decodes a JSON body with the app's JSON decoder after folding
// field aliases into their canonical names, then validates it.
func parseBody(ctx *fiber.Ctx, dst interface{}) error {
	raw := ctx.Body()
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("{}")
	}
	body, err := dto.NormalizeAliases(raw)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctx.App().Config().JSONDecoder(body, dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	return serverutils.ValidateRequest(dst)
}

func uuidParam(ctx *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(ctx.Params(name))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return id, nil
}
