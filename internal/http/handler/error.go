package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"spouseshowcase/internal/http/middleware"
)

// errorPayload is the JSON body of every error response.
// Details is only filled in development mode.
type errorPayload struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func writeError(c *fiber.Ctx, status int, message, details string) error {
	return c.Status(status).JSON(errorPayload{Message: message, Details: details})
}

// ErrorHandler returns a Fiber global error handler that turns unhandled
// errors (unknown routes, oversized bodies, panics) into errorPayload bodies.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			status = ferr.Code
		}

		if status >= fiber.StatusInternalServerError {
			logger.ErrorContext(c.UserContext(), "server error",
				slog.String("request_id", middleware.RequestIDFromCtx(c)),
				slog.String("path", c.Path()),
				slog.String("error", err.Error()),
			)
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "Bad request", "")
		case fiber.StatusNotFound:
			return writeError(c, status, "Not found", "")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "Method not allowed", "")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "Request body too large", "")
		default:
			return writeError(c, status, "Internal Server Error", "")
		}
	}
}
