package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"aquashop/internal/domain"
	applog "aquashop/internal/log"
	"aquashop/internal/services"
)

type OrderHandler struct {
	Order *services.OrderService
	Auth  *services.AuthService
}

// Checkout turns the cart into a pending order and shows the invoice with
// the WhatsApp handoff link. The cart is already empty by the time the
// viewer sees that page; the handoff is optimistic.
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user := h.Auth.CurrentUser(sid)

	res, err := h.Order.Checkout(sid, user)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			return c.Redirect("/cart")
		}
		applog.Error(c, "order.checkout.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "Could not place your order. Please try again."})
	}

	applog.Audit(c, "order.place", map[string]any{"order_id": res.Order.ID, "total": res.Order.Total, "items": len(res.Order.Items)})
	return c.Redirect("/order/" + res.Order.ID)
}

// View renders the invoice for one order. Customers only see their own;
// admins see all.
func (h *OrderHandler) View(c *fiber.Ctx) error {
	o, err := h.Order.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	u := h.Auth.CurrentUser(c.Cookies("sid"))
	if !u.IsAdmin() && (u == nil || u.Email != o.CustomerEmail) {
		applog.Security(c, "access.denied.order", map[string]any{"order_id": o.ID})
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Order not found"})
	}

	return render(c, "invoice", fiber.Map{
		"Order":       o,
		"WhatsAppURL": h.Order.HandoffLink(o),
	})
}

// History lists the logged-in customer's orders, newest first.
func (h *OrderHandler) History(c *fiber.Ctx) error {
	u, _ := c.Locals("user").(*domain.User)
	if u == nil {
		return c.Redirect("/login")
	}
	return render(c, "profile", fiber.Map{"Orders": h.Order.History(u.Email)})
}
