package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/postdeck/postdeck/internal/service"
)

// respondError maps typed service errors to their status; everything else is
// a store failure.
func respondError(c *fiber.Ctx, err error) error {
	var svcErr service.ServiceError
	if errors.As(err, &svcErr) {
		return c.Status(svcErr.Status).JSON(fiber.Map{
			"error": svcErr.Message,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
