package handler

import (
	"errors"

	"wordquiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal Server Error"

// ErrorHandler maps handler errors to responses. Errors that are not part of
// the domain taxonomy are logged and reported as a plain 500.
func ErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var validationErr *domain.ValidationError
		var notFoundErr *domain.NotFoundError
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &validationErr):
			return c.Status(fiber.StatusBadRequest).JSON(ErrorsResponse{Errors: validationErr.Errors})
		case errors.As(err, &notFoundErr):
			return sendText(c, notFoundErr.Status(), notFoundErr.Error())
		case errors.As(err, &fiberErr):
			return sendText(c, fiberErr.Code, fiberErr.Message)
		}

		logger.Error("Request failed",
			zap.Error(err),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)
		return sendText(c, fiber.StatusInternalServerError, internalErrorMessage)
	}
}

func sendText(c *fiber.Ctx, status int, message string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(status).SendString(message)
}
