package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"contacts-manager/backend/metrics"
	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"
	"contacts-manager/backend/system"

	"github.com/xuri/excelize/v2"
)

// CountriesSheet is the worksheet read by CountryUploadFromFile.
const CountriesSheet = "Countries"

// CountriesService manages the shared country list.
type CountriesService struct {
	repo repositories.CountriesRepository
}

func NewCountriesService(repo repositories.CountriesRepository) *CountriesService {
	return &CountriesService{repo: repo}
}

// AddCountry stores a new country. Names are unique and compared exactly.
func (s *CountriesService) AddCountry(ctx context.Context, req *models.CountryAddRequest) (*models.CountryResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request", ErrNullArgument)
	}
	if req.Name == nil {
		return nil, fmt.Errorf("%w: country name", ErrNullArgument)
	}

	existing, err := s.repo.GetCountryByName(ctx, *req.Name)
	if err != nil {
		return nil, fmt.Errorf("lookup country %q: %w", *req.Name, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, *req.Name)
	}

	country := req.ToCountry()
	created, err := s.repo.AddCountry(ctx, &country)
	if errors.Is(err, repositories.ErrConflict) {
		// lost a race with a concurrent insert of the same name
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, *req.Name)
	}
	if err != nil {
		return nil, fmt.Errorf("add country %q: %w", *req.Name, err)
	}

	metrics.CountriesCreated.WithLabelValues("form").Inc()
	resp := models.ToCountryResponse(*created)
	return &resp, nil
}

func (s *CountriesService) GetAllCountries(ctx context.Context) ([]models.CountryResponse, error) {
	countries, err := s.repo.GetAllCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	out := make([]models.CountryResponse, 0, len(countries))
	for _, c := range countries {
		out = append(out, models.ToCountryResponse(c))
	}
	return out, nil
}

// GetCountryByID returns nil when id is nil or no such country exists.
func (s *CountriesService) GetCountryByID(ctx context.Context, id *uint) (*models.CountryResponse, error) {
	if id == nil {
		return nil, nil
	}

	country, err := s.repo.GetCountryByID(ctx, *id)
	if err != nil {
		return nil, fmt.Errorf("get country %d: %w", *id, err)
	}
	if country == nil {
		return nil, nil
	}

	resp := models.ToCountryResponse(*country)
	return &resp, nil
}

// CountryUploadFromFile imports names from column A of the "Countries" sheet,
// starting at row 2. Blank names and names already stored are skipped; the
// store is consulted per row so repeats inside the file are skipped too.
// Returns the number of countries inserted.
func (s *CountriesService) CountryUploadFromFile(ctx context.Context, r io.Reader) (int, error) {
	if r == nil {
		return 0, fmt.Errorf("%w: file", ErrNullArgument)
	}

	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidFile, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(CountriesSheet); err != nil || idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrSheetNotFound, CountriesSheet)
	}

	rows, err := f.Rows(CountriesSheet)
	if err != nil {
		return 0, fmt.Errorf("read sheet %q: %w", CountriesSheet, err)
	}
	defer rows.Close()

	inserted := 0
	for rowNum := 1; rows.Next(); rowNum++ {
		if rowNum == 1 {
			continue // header
		}
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		cols, err := rows.Columns()
		if err != nil {
			return inserted, fmt.Errorf("read row %d: %w", rowNum, err)
		}
		if len(cols) == 0 {
			continue
		}
		name := strings.TrimSpace(cols[0])
		if name == "" {
			continue
		}

		existing, err := s.repo.GetCountryByName(ctx, name)
		if err != nil {
			return inserted, fmt.Errorf("lookup country %q: %w", name, err)
		}
		if existing != nil {
			continue
		}

		_, err = s.repo.AddCountry(ctx, &models.Country{Name: name})
		if errors.Is(err, repositories.ErrConflict) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("add country %q (row %d): %w", name, rowNum, err)
		}
		inserted++
	}
	if err := rows.Error(); err != nil && !errors.Is(err, io.EOF) {
		return inserted, fmt.Errorf("read sheet %q: %w", CountriesSheet, err)
	}

	metrics.CountriesCreated.WithLabelValues("upload").Add(float64(inserted))
	system.Info("Imported %d countries from spreadsheet", inserted)
	return inserted, nil
}
