package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"aquashop/internal/domain"
	applog "aquashop/internal/log"
	"aquashop/internal/services"
	"aquashop/internal/store"
	"aquashop/internal/validate"
)

type AdminHandler struct {
	Catalog *services.CatalogService
	Order   *services.OrderService
}

// Dashboard shows the catalog editor and the order queue on one page, same
// as the original admin view.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	return render(c, "admin", fiber.Map{
		"Fish":       h.Catalog.List(),
		"Orders":     h.Order.List(),
		"Categories": domain.Categories,
	})
}

// EditForm preloads the catalog form with one listing.
func (h *AdminHandler) EditForm(c *fiber.Ctx) error {
	f, err := h.Catalog.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Listing not found"})
	}
	return render(c, "admin", fiber.Map{
		"Fish":       h.Catalog.List(),
		"Orders":     h.Order.List(),
		"Categories": domain.Categories,
		"Editing":    f,
	})
}

// SaveFish handles both create (no id posted) and update. The form always
// posts the full record, so an update replaces every editable field.
func (h *AdminHandler) SaveFish(c *fiber.Ctx) error {
	name := c.FormValue("name")
	sci := c.FormValue("scientificName")
	desc := c.FormValue("description")
	price, okPrice := validate.Price(c.FormValue("price"))
	stock, okStock := validate.Stock(c.FormValue("stock"))
	if name == "" || sci == "" || desc == "" || !okPrice || !okStock {
		return c.Status(fiber.StatusBadRequest).SendString("missing or invalid listing fields")
	}

	origPrice := 0.0
	if v := c.FormValue("originalPrice"); v != "" {
		var ok bool
		if origPrice, ok = validate.Price(v); !ok {
			return c.Status(fiber.StatusBadRequest).SendString("invalid original price")
		}
	}
	category := c.FormValue("category")
	if category != "" {
		known := false
		for _, k := range domain.Categories {
			if category == k {
				known = true
				break
			}
		}
		if !known {
			return c.Status(fiber.StatusBadRequest).SendString("invalid category")
		}
	}
	imageURL := c.FormValue("imageUrl")
	habitat := c.FormValue("habitat")

	if id := c.FormValue("id"); id != "" {
		patch := store.FishPatch{
			Name: &name, ScientificName: &sci, Price: &price, OriginalPrice: &origPrice,
			Stock: &stock, Description: &desc, Habitat: &habitat,
		}
		if imageURL != "" {
			patch.ImageURL = &imageURL
		}
		if category != "" {
			patch.Category = &category
		}
		if _, err := h.Catalog.Update(id, patch); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Listing not found"})
			}
			return c.Status(fiber.StatusBadRequest).SendString("could not update listing")
		}
		applog.Audit(c, "admin.catalog.update", map[string]any{"fish_id": id})
		return c.Redirect("/admin")
	}

	f := h.Catalog.Create(domain.Fish{
		Name: name, ScientificName: sci, Price: price, OriginalPrice: origPrice,
		Stock: stock, Description: desc, ImageURL: imageURL, Category: category, Habitat: habitat,
	})
	applog.Audit(c, "admin.catalog.create", map[string]any{"fish_id": f.ID})
	return c.Redirect("/admin")
}

// DeleteFish removes a listing; deleting an unknown id is a quiet no-op.
func (h *AdminHandler) DeleteFish(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	h.Catalog.Remove(id)
	applog.Audit(c, "admin.catalog.delete", map[string]any{"fish_id": id})
	return c.Redirect("/admin")
}

// UpdateOrderStatus overwrites an order's status. The dashboard only offers
// pending -> confirmed, but any known status value is accepted here.
func (h *AdminHandler) UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	status := c.FormValue("status")
	switch status {
	case domain.StatusPending, domain.StatusConfirmed, domain.StatusShipped:
	default:
		return c.Status(fiber.StatusBadRequest).SendString("invalid status")
	}
	if id == "" {
		return c.Status(fiber.StatusBadRequest).SendString("missing id")
	}
	h.Order.SetStatus(id, status)
	applog.Audit(c, "admin.orders.update", map[string]any{"order_id": id, "status": status})
	return c.Redirect("/admin")
}
