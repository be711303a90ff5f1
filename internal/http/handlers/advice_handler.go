package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "aquashop/internal/log"
	"aquashop/internal/services"
)

type AdviceHandler struct {
	Advice *services.AdviceService
}

// Tips answers the "Ask Gemini" button on a shop card.
// GET /api/v1/care-tips?fish=<display name>
// The response is always 200 with a tips string; provider failures have
// already been folded into fallback text by the service.
func (h *AdviceHandler) Tips(c *fiber.Ctx) error {
	fish := strings.TrimSpace(c.Query("fish"))
	if fish == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing fish"})
	}
	if len(fish) > 100 {
		fish = fish[:100]
	}

	tips := h.Advice.CareTips(c.UserContext(), fish)
	if !h.Advice.Configured() {
		applog.Info(c, "advice.unconfigured", map[string]any{"fish": fish})
	}
	return c.JSON(fiber.Map{"fish": fish, "tips": tips})
}
