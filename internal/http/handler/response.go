package handler

import "github.com/gofiber/fiber/v2"

// Response is the uniform envelope returned by every endpoint:
// { success, data?, error?, message? }.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeData(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(Response{Success: true, Data: data})
}

func writeCreated(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(Response{Success: true, Data: data, Message: message})
}

func writeMessage(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(Response{Success: true, Message: message})
}

// writeError writes a failure envelope. The message never carries internal
// detail; anything worth logging is logged server-side before calling this.
func writeError(c *fiber.Ctx, status int, errMsg string) error {
	return c.Status(status).JSON(Response{Success: false, Error: errMsg})
}

// writeValidationError reports the first failing rule's message under a
// fixed "Validation failed" error, matching the API contract.
func writeValidationError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(Response{
		Success: false,
		Error:   "Validation failed",
		Message: message,
	})
}
