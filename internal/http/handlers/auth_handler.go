package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	applog "aquashop/internal/log"
	"aquashop/internal/services"
	"aquashop/internal/validate"
)

type AuthHandler struct {
	Auth *services.AuthService
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email, okEmail := validate.Email(c.FormValue("email"))
	if !okEmail || !validate.Password(c.FormValue("password")) {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email, "reason": "bad_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password too short."})
	}

	u, err := h.Auth.Login(sid, email, c.FormValue("password"))
	if err != nil {
		applog.Security(c, "auth.login.fail", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Invalid email or password too short."})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email, "role": u.Role})
	if u.IsAdmin() {
		return c.Redirect("/admin")
	}
	return c.Redirect("/shop")
}

// Logout drops the identity and, with it, the cart. Leaving always empties
// the basket; that is storefront behavior, not an accident.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	h.Auth.Logout(sid)
	c.Cookie(&fiber.Cookie{
		Name:     "sid",
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	applog.Audit(c, "auth.logout", map[string]any{"sid": sid})
	return c.Redirect("/")
}
