package handlers

import (
	"errors"
	"net/http"
	"strings"

	"contacts-manager/backend/models"
	"contacts-manager/backend/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const claimsKey = "user"

// Register creates an account and returns a token for it.
// POST /api/account/register
func (h *Handler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}

	res, err := h.Accounts.Register(c.UserContext(), &req)
	if err != nil {
		return writeError(c, err)
	}

	h.Events.Add(EventSuccess, "User registered: "+res.User.Email)
	return c.Status(http.StatusCreated).JSON(res)
}

// Login
// POST /api/account/login
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}

	res, err := h.Accounts.Login(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrAccountLocked) || errors.Is(err, services.ErrInvalidCredentials) {
			h.Events.Add(EventWarning, "Failed login attempt for: "+req.Email)
		}
		return writeError(c, err)
	}

	h.Events.Add(EventSuccess, "User logged in: "+res.User.Email)
	return c.JSON(res)
}

// Logout revokes the caller's token.
// POST /api/account/logout
func (h *Handler) Logout(c *fiber.Ctx) error {
	claims := claimsFrom(c)
	if err := h.Accounts.Logout(c.UserContext(), claims); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logged out"})
}

// IsEmailAvailable backs the registration form's remote check.
// GET /api/account/unique-email?email=
func (h *Handler) IsEmailAvailable(c *fiber.Ctx) error {
	free, err := h.Accounts.IsEmailAvailable(c.UserContext(), c.Query("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"available": free})
}

// ChangePassword
// PUT /api/account/password
func (h *Handler) ChangePassword(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req models.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid input")
	}
	if err := h.Accounts.ChangePassword(c.UserContext(), userID, &req); err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password updated"})
}

// JWTAuthMiddleware validates the bearer token and stores its claims in
// c.Locals("user").
func (h *Handler) JWTAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Missing authorization header"})
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid authorization format"})
		}

		claims, err := h.Tokens.Parse(c.UserContext(), strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
			}
			return writeError(c, err)
		}

		c.Locals(claimsKey, claims)
		return c.Next()
	}
}

// AdminOnly must run after JWTAuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := claimsFrom(c)
		if claims == nil || !claims.IsAdmin() {
			return c.Status(http.StatusForbidden).JSON(fiber.Map{"error": "Admin role required"})
		}
		return c.Next()
	}
}

func claimsFrom(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(claimsKey).(*services.Claims)
	return claims
}

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	claims := claimsFrom(c)
	if claims == nil {
		return uuid.Nil, services.ErrInvalidToken
	}
	return claims.UserID()
}
