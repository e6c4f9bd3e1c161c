package handlers

import (
	"log"
	"net/http"

	"gallery/internal/apperror"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error to its HTTP status and a client-safe
// message. Server-side faults (integrity violations, storage failures) are
// logged for operators; their details never reach the client.
func respondError(c *fiber.Ctx, err error) error {
	status := apperror.StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": apperror.MessageOf(err),
	})
}
