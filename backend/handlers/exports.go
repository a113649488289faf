package handlers

import (
	"bytes"
	"context"

	"contacts-manager/backend/system"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type exportFunc func(ctx context.Context, userID uuid.UUID) (*bytes.Reader, error)

func (h *Handler) sendExport(c *fiber.Ctx, export exportFunc, filename, contentType string) error {
	userID, err := currentUserID(c)
	if err != nil {
		return writeError(c, err)
	}

	r, err := export(c.UserContext(), userID)
	if err != nil {
		return writeError(c, err)
	}

	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	c.Set(fiber.HeaderContentType, contentType)
	system.Info("People exported as %s", filename)
	return c.SendStream(r, r.Len())
}

// GET /api/persons/export/csv
func (h *Handler) ExportPeopleCSV(c *fiber.Ctx) error {
	return h.sendExport(c, h.Persons.GetPeopleCSV, "People.csv", "text/csv; charset=utf-8")
}

// GET /api/persons/export/excel
func (h *Handler) ExportPeopleExcel(c *fiber.Ctx) error {
	return h.sendExport(c, h.Persons.GetPeopleExcel, "People.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// GET /api/persons/export/pdf
func (h *Handler) ExportPeoplePDF(c *fiber.Ctx) error {
	return h.sendExport(c, h.Persons.GetPeoplePDF, "People.pdf", "application/pdf")
}
