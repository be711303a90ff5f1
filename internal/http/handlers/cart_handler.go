package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "aquashop/internal/log"
	"aquashop/internal/services"
	"aquashop/internal/store"
	"aquashop/internal/validate"
)

type CartHandler struct {
	Cart    *services.CartService
	Catalog *services.CatalogService
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	cv := h.Cart.View(ensureSID(c))
	return render(c, "cart", fiber.Map{"Cart": cv})
}

// Add puts a listing in the cart. The quantity is clamped to the listing's
// current stock here, at form time; the cart itself does not re-check.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	sid := ensureSID(c)
	fishID, ok := validate.ID(c.FormValue("fishId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing fishId")
	}

	fish, err := h.Catalog.Get(fishID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
	}
	qty := validate.Qty(c.FormValue("qty"), fish.Stock)

	if err := h.Cart.Add(sid, fishID, qty); err != nil {
		if errors.Is(err, services.ErrNotAuthorized) {
			applog.Security(c, "cart.add.denied", map[string]any{"fish_id": fishID})
			return c.Redirect("/login")
		}
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "This item is no longer available"})
		}
		applog.Error(c, "cart.add.fail", err, map[string]any{"fish_id": fishID})
		return c.Status(fiber.StatusInternalServerError).SendString("could not add to cart")
	}
	applog.Info(c, "cart.add", map[string]any{"fish_id": fishID, "qty": qty})
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	if fishID, ok := validate.ID(c.FormValue("fishId")); ok {
		h.Cart.Remove(sid, fishID)
	}
	return c.Redirect("/cart")
}
