package handlers

import (
	"github.com/gofiber/fiber/v2"

	"aquashop/internal/config"
	"aquashop/internal/domain"
	applog "aquashop/internal/log"
	"aquashop/internal/services"
	"aquashop/internal/validate"
)

type ShopHandler struct {
	Catalog *services.CatalogService
	Shop    config.Shop
}

func (h *ShopHandler) Home(c *fiber.Ctx) error {
	return render(c, "home", fiber.Map{
		"Shop":       h.Shop,
		"Categories": domain.Categories,
	})
}

// Browse renders the shop view with its search, category and sort controls.
// Bad selector values degrade to "show everything" rather than erroring.
func (h *ShopHandler) Browse(c *fiber.Ctx) error {
	q := c.Query("q")
	category, ok := validate.Category(c.Query("category"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "category", "value": c.Query("category")})
		category = domain.CategoryAll
	}
	mode := validate.Sort(c.Query("sort"))

	items := h.Catalog.Browse(q, category, mode)
	return render(c, "shop", fiber.Map{
		"Items":      items,
		"Q":          q,
		"Category":   category,
		"Sort":       mode,
		"Categories": domain.Categories,
		"Count":      len(items),
	})
}

func (h *ShopHandler) Contact(c *fiber.Ctx) error {
	return render(c, "contact", fiber.Map{"Shop": h.Shop})
}

// Availability answers the stock badge poll for one listing.
// GET /api/v1/availability?fishId=...
func (h *ShopHandler) Availability(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Query("fishId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fishId"})
	}
	avail, err := h.Catalog.Availability(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "unknown listing"})
	}
	return c.JSON(avail)
}
