package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"contacts-manager/backend/metrics"
	"contacts-manager/backend/models"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// PeopleSheet is the worksheet written by GetPeopleExcel.
const PeopleSheet = "PeopleSheet"

// ExportHeaders are the columns of every people export, in order.
var ExportHeaders = []string{"PersonId", "PersonName", "Email", "Phone", "DateOfBirth", "Country", "Address"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func exportRow(p models.PersonResponse) []string {
	var dob string
	if p.DateOfBirth != nil {
		dob = p.DateOfBirth.Format(models.DateLayout)
	}
	return []string{
		strconv.FormatUint(uint64(p.ID), 10),
		p.Name,
		p.Email,
		p.Phone,
		dob,
		p.Country,
		p.Address,
	}
}

// GetPeopleCSV renders the user's persons as UTF-8 CSV (with BOM so Excel
// detects the encoding). The reader is positioned at the start.
func (s *PersonService) GetPeopleCSV(ctx context.Context, userID uuid.UUID) (*bytes.Reader, error) {
	people, err := s.GetAllPeople(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(ExportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range people {
		if err := w.Write(exportRow(p)); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", p.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	metrics.Exports.WithLabelValues("csv").Inc()
	return bytes.NewReader(buf.Bytes()), nil
}

// GetPeopleExcel renders the user's persons into an .xlsx workbook with a
// single "PeopleSheet" worksheet.
func (s *PersonService) GetPeopleExcel(ctx context.Context, userID uuid.UUID) (*bytes.Reader, error) {
	people, err := s.GetAllPeople(ctx, userID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), PeopleSheet); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	header := make([]any, len(ExportHeaders))
	for i, h := range ExportHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(PeopleSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	dateStyle, err := f.NewStyle(&excelize.Style{NumFmt: 14})
	if err != nil {
		return nil, fmt.Errorf("date style: %w", err)
	}

	for i, p := range people {
		row := i + 2
		values := []any{p.ID, p.Name, p.Email, p.Phone, nil, p.Country, p.Address}
		if p.DateOfBirth != nil {
			values[4] = *p.DateOfBirth
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(PeopleSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", row, err)
		}
		dobCell, _ := excelize.CoordinatesToCellName(5, row)
		if err := f.SetCellStyle(PeopleSheet, dobCell, dobCell, dateStyle); err != nil {
			return nil, fmt.Errorf("style row %d: %w", row, err)
		}
	}

	if err := f.SetColWidth(PeopleSheet, "A", "A", 10); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(PeopleSheet, "B", "G", 24); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	metrics.Exports.WithLabelValues("excel").Inc()
	return bytes.NewReader(buf.Bytes()), nil
}

// GetPeoplePDF renders the user's persons as a landscape A4 table.
func (s *PersonService) GetPeoplePDF(ctx context.Context, userID uuid.UUID) (*bytes.Reader, error) {
	people, err := s.GetAllPeople(ctx, userID)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle("People", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	widths := []float64{18, 42, 50, 30, 26, 30, 61}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(230, 230, 230)
		for i, h := range ExportHeaders {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 9)
	}

	pdf.SetHeaderFunc(writeHeader)
	pdf.AddPage()

	for _, p := range people {
		for i, v := range exportRow(p) {
			pdf.CellFormat(widths[i], 7, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	metrics.Exports.WithLabelValues("pdf").Inc()
	return bytes.NewReader(buf.Bytes()), nil
}
