package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"contacts-manager/backend/metrics"
	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"

	"github.com/google/uuid"
)

// PersonService manages the persons owned by a user.
type PersonService struct {
	repo      repositories.PersonsRepository
	countries repositories.CountriesRepository
	now       func() time.Time
}

func NewPersonService(repo repositories.PersonsRepository, countries repositories.CountriesRepository) *PersonService {
	return &PersonService{repo: repo, countries: countries, now: time.Now}
}

// errUnknownCountry is the client-facing error for a CountryID that names no
// stored country.
func errUnknownCountry(id uint) error {
	return &ValidationError{Field: "CountryID", Tag: "exists", Message: fmt.Sprintf("Country %d does not exist", id)}
}

// checkCountry fails with a validation error when id is set but unknown.
func (s *PersonService) checkCountry(ctx context.Context, id *uint) error {
	if id == nil {
		return nil
	}
	country, err := s.countries.GetCountryByID(ctx, *id)
	if err != nil {
		return fmt.Errorf("get country %d: %w", *id, err)
	}
	if country == nil {
		return errUnknownCountry(*id)
	}
	return nil
}

// storeError turns a foreign key rejection (a country removed after
// checkCountry) into the same validation error.
func storeError(op string, countryID *uint, err error) error {
	if countryID != nil && errors.Is(err, repositories.ErrMissingReference) {
		return errUnknownCountry(*countryID)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *PersonService) toResponse(p models.Person) models.PersonResponse {
	return models.ToPersonResponse(p, s.now())
}

func (s *PersonService) toResponses(people []models.Person) []models.PersonResponse {
	now := s.now()
	out := make([]models.PersonResponse, 0, len(people))
	for _, p := range people {
		out = append(out, models.ToPersonResponse(p, now))
	}
	return out
}

// AddPerson validates and stores a new person.
func (s *PersonService) AddPerson(ctx context.Context, req *models.PersonAddRequest) (*models.PersonResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request", ErrNullArgument)
	}
	if req.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: owning user", ErrNullArgument)
	}
	if err := ValidateModel(req); err != nil {
		return nil, err
	}
	if err := s.checkCountry(ctx, req.CountryID); err != nil {
		return nil, err
	}

	person := req.ToPerson()
	created, err := s.repo.AddPerson(ctx, &person)
	if err != nil {
		return nil, storeError("add person", req.CountryID, err)
	}

	metrics.PersonsCreated.Inc()
	resp := s.toResponse(*created)
	return &resp, nil
}

func (s *PersonService) GetAllPeople(ctx context.Context, userID uuid.UUID) ([]models.PersonResponse, error) {
	people, err := s.repo.GetAllPersons(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}
	return s.toResponses(people), nil
}

// GetPersonByPersonID returns nil when id is nil or the user has no such person.
func (s *PersonService) GetPersonByPersonID(ctx context.Context, id *uint, userID uuid.UUID) (*models.PersonResponse, error) {
	if id == nil {
		return nil, nil
	}

	person, err := s.repo.GetPersonByID(ctx, *id, userID)
	if err != nil {
		return nil, fmt.Errorf("get person %d: %w", *id, err)
	}
	if person == nil {
		return nil, nil
	}

	resp := s.toResponse(*person)
	return &resp, nil
}

// GetFilteredPersons returns the user's persons whose searchBy field contains
// searchString, ignoring case. An empty searchString returns everyone.
func (s *PersonService) GetFilteredPersons(ctx context.Context, searchBy, searchString string, userID uuid.UUID) ([]models.PersonResponse, error) {
	if searchString == "" {
		return s.GetAllPeople(ctx, userID)
	}

	field, err := models.ParsePersonField(searchBy)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(searchString)
	now := s.now()
	people, err := s.repo.GetFilteredPersons(ctx, userID, func(p *models.Person) bool {
		text, ok := field.Text(models.ToPersonResponse(*p, now))
		return ok && strings.Contains(strings.ToLower(text), needle)
	})
	if err != nil {
		return nil, fmt.Errorf("filter people by %s: %w", field, err)
	}
	return s.toResponses(people), nil
}

// GetSortedPeople orders people by sortBy. An empty sortBy returns the input
// unchanged. Equal keys are ordered by ID, so DESC is the exact reverse of ASC.
func (s *PersonService) GetSortedPeople(people []models.PersonResponse, sortBy string, order models.SortOrder) ([]models.PersonResponse, error) {
	if sortBy == "" {
		return people, nil
	}

	field, err := models.ParsePersonField(sortBy)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(people)
	slices.SortFunc(sorted, func(a, b models.PersonResponse) int {
		c := field.Compare(a, b)
		if c == 0 {
			c = models.FieldID.Compare(a, b)
		}
		if order == models.SortDesc {
			return -c
		}
		return c
	})
	return sorted, nil
}

// UpdatePerson replaces the editable fields of one of the user's persons.
func (s *PersonService) UpdatePerson(ctx context.Context, req *models.PersonUpdateRequest, userID uuid.UUID) (*models.PersonResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request", ErrNullArgument)
	}
	if err := ValidateModel(req); err != nil {
		return nil, err
	}
	if err := s.checkCountry(ctx, req.CountryID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetPersonByID(ctx, req.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("get person %d: %w", req.ID, err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: person %d", ErrNotFound, req.ID)
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.Phone = req.Phone
	existing.DateOfBirth = req.DateOfBirth
	existing.CountryID = req.CountryID
	existing.Address = req.Address

	updated, err := s.repo.UpdatePerson(ctx, existing, userID)
	if err != nil {
		return nil, storeError(fmt.Sprintf("update person %d", req.ID), req.CountryID, err)
	}

	resp := s.toResponse(*updated)
	return &resp, nil
}

// DeletePerson reports whether a person was removed. A nil id or a person the
// user does not own yields false.
func (s *PersonService) DeletePerson(ctx context.Context, id *uint, userID uuid.UUID) (bool, error) {
	if id == nil {
		return false, nil
	}

	existing, err := s.repo.GetPersonByID(ctx, *id, userID)
	if err != nil {
		return false, fmt.Errorf("get person %d: %w", *id, err)
	}
	if existing == nil {
		return false, nil
	}

	deleted, err := s.repo.DeletePerson(ctx, *id, userID)
	if err != nil {
		return false, fmt.Errorf("delete person %d: %w", *id, err)
	}
	if deleted {
		metrics.PersonsDeleted.Inc()
	}
	return deleted, nil
}
