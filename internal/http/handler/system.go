package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
)

// APIInfo describes the service and its endpoints at the root path.
func APIInfo() fiber.Handler {
	info := fiber.Map{
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"documents": "/api/documents",
			"folders":   "/api/folders",
		},
	}
	return func(c *fiber.Ctx) error {
		return c.JSON(Response{
			Success: true,
			Data:    info,
			Message: "Document Management System API",
		})
	}
}

// HealthCheck reports whether the database is reachable.
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe is a bare liveness check with no dependencies.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
