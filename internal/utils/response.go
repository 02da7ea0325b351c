package utils

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error response format the frontend consumes. Success
// responses are the entity (or entity list) itself, not an envelope.
type ErrorBody struct {
	Error string `json:"error" example:"title is required"`
}

// ErrorResponse sends an error response with a short machine-readable reason.
func ErrorResponse(c *fiber.Ctx, code int, reason string) error {
	return c.Status(code).JSON(ErrorBody{
		Error: reason,
	})
}
