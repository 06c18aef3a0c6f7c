package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"shoppinglist/internal/repositories"
	"shoppinglist/internal/services"
)

// respondError maps service and repository errors onto the API error contract:
// missing targets get a bare 404, validation errors a 400 with the message, and
// everything else a generic 500 with the cause logged server-side only.
func respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, repositories.ErrItemNotFound) || errors.Is(err, repositories.ErrUserNotFound) {
		// SendStatus would write the status text; the contract is an empty body.
		return c.Status(fiber.StatusNotFound).Send(nil)
	}

	var vErr *services.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": vErr.Message,
		})
	}

	log.Printf("Error handling %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}

// parseID reads a numeric path parameter, rejecting non-numeric values.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id < 0 {
		return 0, &services.ValidationError{Message: "invalid id"}
	}
	return uint(id), nil
}
