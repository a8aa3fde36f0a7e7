package serverutils

import (
	"errors"

	"ai-comicstory-be/internal/pkg/apperror"
	"ai-comicstory-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const generationMessagePrefix = "Failed to generate comic: "

// StatusFor maps an error to its HTTP status and client message.
func StatusFor(err error) (int, string) {
	var fiberErr *fiber.Error

	switch {
	case errors.Is(err, apperror.ErrUnauthorized):
		return fiber.StatusUnauthorized, apperror.PublicMessage(err, "Unauthorized")
	case errors.Is(err, apperror.ErrValidation):
		return fiber.StatusBadRequest, apperror.PublicMessage(err, "Invalid request")
	case errors.Is(err, apperror.ErrNotFound):
		return fiber.StatusNotFound, apperror.PublicMessage(err, "Not found")
	case errors.Is(err, apperror.ErrGenerationInProgress):
		return fiber.StatusConflict, apperror.PublicMessage(err, "Comic generation already in progress")
	case errors.Is(err, apperror.ErrGeneration):
		return fiber.StatusInternalServerError, generationMessagePrefix + apperror.PublicMessage(err, "Unknown error")
	case errors.Is(err, apperror.ErrPersistence):
		return fiber.StatusInternalServerError, apperror.PublicMessage(err, "Internal server error")
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}

// ErrorHandlerMiddleware turns errors returned by handlers into {"error": "..."} bodies.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		status, message := StatusFor(err)
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"status": status,
				"error":  err.Error(),
			})
		}

		return ctx.Status(status).JSON(ErrorResponse(message))
	}
}
