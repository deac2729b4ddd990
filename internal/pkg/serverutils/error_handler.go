package serverutils

import (
	"errors"

	"wedding-portal-be/internal/pkg/apperror"
	"wedding-portal-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware renders errors returned by downstream handlers.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, body := ToResponse(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}
		return ctx.Status(status).JSON(body)
	}
}

// ToResponse maps an error to its HTTP status and envelope.
func ToResponse(err error) (int, *Response[any]) {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, ErrorResponse(fiberErr.Code, fiberErr.Message)
	}

	var appErr *apperror.Error
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, "internal server error")
	}

	switch appErr.Kind {
	case apperror.KindNotFound:
		return fiber.StatusNotFound, ErrorResponseWithCode(fiber.StatusNotFound, "not_found", appErr.Message)
	case apperror.KindConflict:
		return fiber.StatusConflict, ErrorResponseWithCode(fiber.StatusConflict, "conflict", appErr.Message)
	case apperror.KindCapacityExceeded:
		return fiber.StatusConflict, ErrorResponseWithCode(fiber.StatusConflict, "capacity_exceeded", appErr.Message)
	case apperror.KindInvalidArgument:
		return fiber.StatusBadRequest, ErrorResponseWithCode(fiber.StatusBadRequest, "invalid_argument", appErr.Message)
	case apperror.KindExternalServiceUnavailable:
		return fiber.StatusServiceUnavailable, ErrorResponseWithCode(fiber.StatusServiceUnavailable, "service_unavailable", appErr.Message)
	case apperror.KindUnauthorized:
		return fiber.StatusUnauthorized, ErrorResponseWithCode(fiber.StatusUnauthorized, "unauthorized", appErr.Message)
	default:
		return fiber.StatusInternalServerError, ErrorResponse(fiber.StatusInternalServerError, "internal server error")
	}
}
