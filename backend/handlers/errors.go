package handlers

import (
	"errors"
	"net/http"

	"contacts-manager/backend/services"
	"contacts-manager/backend/system"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrNullArgument),
		errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrUnknownField),
		errors.Is(err, services.ErrWeakPassword),
		errors.Is(err, services.ErrSheetNotFound),
		errors.Is(err, services.ErrInvalidFile):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccountLocked):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps a service error to its status code. Internal errors are
// logged and not echoed to the client.
func writeError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		system.Error("%s %s: %v", c.Method(), c.Path(), err)
		msg = "Internal server error"
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": msg})
}
