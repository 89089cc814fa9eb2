package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"docshelf/internal/http/middleware"
)

// requestIDFromCtx extracts the request id stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ErrorHandler returns the global Fiber error handler. Route misses become a
// 404 envelope; everything else is normalized into a 500 envelope with a
// generic message, the full error going to the server log only.
func ErrorHandler(log *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
				return c.Status(fiber.StatusNotFound).JSON(Response{
					Success: false,
					Error:   "Route not found",
					Message: fmt.Sprintf("Cannot %s %s", c.Method(), c.Path()),
				})
			default:
				if fe.Code < fiber.StatusInternalServerError {
					return writeError(c, fe.Code, fe.Message)
				}
			}
		}

		log.Error("unhandled request error",
			zap.String("request_id", requestIDFromCtx(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return writeError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
