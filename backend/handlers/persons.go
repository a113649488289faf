package handlers

import (
	"net/http"
	"strings"
	"time"

	"contacts-manager/backend/models"

	"github.com/gofiber/fiber/v2"
)

// personPayload is the JSON body for create and update. The date of birth
// may be "2006-01-02" or RFC 3339.
type personPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	CountryID   *uint  `json:"country_id"`
	Address     string `json:"address"`
}

func (p personPayload) dateOfBirth() (*time.Time, error) {
	s := strings.TrimSpace(p.DateOfBirth)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(models.DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parsePersonPayload(c *fiber.Ctx) (personPayload, *time.Time, bool) {
	var body personPayload
	if err := c.BodyParser(&body); err != nil {
		return body, nil, false
	}
	dob, err := body.dateOfBirth()
	if err != nil {
		return body, nil, false
	}
	return body, dob, true
}

// GetPersons lists the caller's persons, filtered then sorted.
// GET /api/persons?searchBy=PersonName&searchString=&sortBy=PersonName&sortOrder=ASC
func (h *Handler) GetPersons(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	searchBy := c.Query("searchBy", "PersonName")
	searchString := c.Query("searchString")
	sortBy := c.Query("sortBy", "PersonName")
	order, err := models.ParseSortOrder(c.Query("sortOrder"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	people, err := h.Persons.GetFilteredPersons(c.UserContext(), searchBy, searchString, userID)
	if err != nil {
		return writeError(c, err)
	}
	people, err = h.Persons.GetSortedPeople(people, sortBy, order)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(fiber.Map{
		"search_by":     searchBy,
		"search_string": searchString,
		"sort_by":       sortBy,
		"sort_order":    order,
		"count":         len(people),
		"persons":       people,
	})
}

// GET /api/persons/:id
func (h *Handler) GetPerson(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid person id")
	}

	person, err := h.Persons.GetPersonByPersonID(c.UserContext(), &id, userID)
	if err != nil {
		return writeError(c, err)
	}
	if person == nil {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Person not found"})
	}
	return c.JSON(person)
}

// POST /api/persons
func (h *Handler) CreatePerson(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}
	body, dob, ok := parsePersonPayload(c)
	if !ok {
		return badRequest(c, "Invalid input")
	}

	person, err := h.Persons.AddPerson(c.UserContext(), &models.PersonAddRequest{
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		DateOfBirth: dob,
		CountryID:   body.CountryID,
		Address:     body.Address,
		UserID:      userID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(person)
}

// PUT /api/persons/:id
func (h *Handler) UpdatePerson(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid person id")
	}
	body, dob, ok := parsePersonPayload(c)
	if !ok {
		return badRequest(c, "Invalid input")
	}

	person, err := h.Persons.UpdatePerson(c.UserContext(), &models.PersonUpdateRequest{
		ID:          id,
		Name:        body.Name,
		Email:       body.Email,
		Phone:       body.Phone,
		DateOfBirth: dob,
		CountryID:   body.CountryID,
		Address:     body.Address,
		UserID:      userID,
	}, userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(person)
}

// DELETE /api/persons/:id
func (h *Handler) DeletePerson(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}
	id, err := paramID(c)
	if err != nil {
		return badRequest(c, "Invalid person id")
	}

	deleted, err := h.Persons.DeletePerson(c.UserContext(), &id, userID)
	if err != nil {
		return writeError(c, err)
	}
	if !deleted {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Person not found"})
	}
	return c.JSON(fiber.Map{"message": "Person deleted"})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
