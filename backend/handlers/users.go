package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetUsers lists every account.
// GET /api/admin/users
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.Accounts.ListUsers(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}
