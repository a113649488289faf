package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"contacts-manager/backend/models"

	"github.com/gofiber/fiber/v2"
)

// GetCountries returns all countries
// GET /api/countries
func (h *Handler) GetCountries(c *fiber.Ctx) error {
	countries, err := h.Countries.GetAllCountries(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(countries)
}

// GET /api/countries/:id
func (h *Handler) GetCountry(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid country id")
	}

	country, err := h.Countries.GetCountryByID(c.UserContext(), &id)
	if err != nil {
		return writeError(c, err)
	}
	if country == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Country not found"})
	}
	return c.JSON(country)
}

// CreateCountry
// POST /api/countries
func (h *Handler) CreateCountry(c *fiber.Ctx) error {
	var input models.CountryAddRequest
	if err := c.BodyParser(&input); err != nil {
		return badRequest(c, "Invalid input")
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return badRequest(c, "Name is required")
		}
		input.Name = &name
	}

	country, err := h.Countries.AddCountry(c.UserContext(), &input)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(country)
}

// UploadCountries imports the "Countries" sheet of an .xlsx file.
// POST /api/countries/upload (multipart field "file")
func (h *Handler) UploadCountries(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return badRequest(c, "Please select an xlsx file")
	}
	if !strings.EqualFold(filepath.Ext(file.Filename), ".xlsx") {
		return badRequest(c, "Unsupported file. 'xlsx' file is expected")
	}

	f, err := file.Open()
	if err != nil {
		return writeError(c, fmt.Errorf("open upload: %w", err))
	}
	defer f.Close()

	inserted, err := h.Countries.CountryUploadFromFile(c.UserContext(), f)
	if err != nil {
		return writeError(c, err)
	}

	h.Events.Add(EventSuccess, fmt.Sprintf("%d countries uploaded from %s", inserted, file.Filename))
	return c.JSON(fiber.Map{
		"inserted": inserted,
		"message":  fmt.Sprintf("%d countries uploaded", inserted),
	})
}
