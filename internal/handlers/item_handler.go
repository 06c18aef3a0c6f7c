package handlers

import (
	"github.com/gofiber/fiber/v2"

	"shoppinglist/internal/models"
	"shoppinglist/internal/services"
)

// ItemHandler handles HTTP requests for shopping-list items.
type ItemHandler struct {
	service *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service *services.ItemService) *ItemHandler {
	return &ItemHandler{
		service: service,
	}
}

// RegisterRoutes registers the item routes with the Fiber app.
func (h *ItemHandler) RegisterRoutes(router fiber.Router) {
	itemRoutes := router.Group("/items")
	itemRoutes.Get("/", h.HandleGetItems)
	itemRoutes.Post("/", h.HandleCreateItem)
	itemRoutes.Put("/:id/mark-bought", h.HandleMarkBought)
	itemRoutes.Delete("/:id", h.HandleDeleteItem)
}

// HandleGetItems retrieves all items as expanded representations.
func (h *ItemHandler) HandleGetItems(c *fiber.Ctx) error {
	items, err := h.service.GetAllItems()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}

// HandleCreateItem creates a new, unbought item.
func (h *ItemHandler) HandleCreateItem(c *fiber.Ctx) error {
	var req models.CreateItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	item, err := h.service.CreateItem(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleMarkBought records a purchase: buyer plus bought timestamp, together.
func (h *ItemHandler) HandleMarkBought(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var req models.MarkBoughtRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "invalid request body",
		})
	}

	item, err := h.service.MarkBought(id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(item)
}

// HandleDeleteItem deletes an item regardless of its bought state.
func (h *ItemHandler) HandleDeleteItem(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteItem(id); err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusNoContent).Send(nil)
}
