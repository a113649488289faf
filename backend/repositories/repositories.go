// Package repositories holds the data-access contracts used by the services
// and their gorm implementations.
package repositories

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"

	"contacts-manager/backend/models"

	"github.com/google/uuid"
)

// ErrNotFound is returned by writes that target a row that does not exist
// for the given owner.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write collides with a unique column, such as
// a second country or account racing for the same name or email.
var ErrConflict = errors.New("unique constraint violated")

// ErrMissingReference is returned when a write points at a row that does not
// exist, such as a person whose country was never stored.
var ErrMissingReference = errors.New("referenced record does not exist")

// CountriesRepository persists countries. Lookups return nil, nil when the
// row does not exist.
type CountriesRepository interface {
	AddCountry(ctx context.Context, country *models.Country) (*models.Country, error)
	GetAllCountries(ctx context.Context) ([]models.Country, error)
	GetCountryByID(ctx context.Context, id uint) (*models.Country, error)
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)
}

// PersonsRepository persists persons. Every method is scoped to the owning
// user; rows of other users are invisible. Reads populate Country.
type PersonsRepository interface {
	AddPerson(ctx context.Context, person *models.Person) (*models.Person, error)
	GetAllPersons(ctx context.Context, userID uuid.UUID) ([]models.Person, error)
	GetPersonByID(ctx context.Context, id uint, userID uuid.UUID) (*models.Person, error)
	GetFilteredPersons(ctx context.Context, userID uuid.UUID, predicate func(*models.Person) bool) ([]models.Person, error)
	UpdatePerson(ctx context.Context, person *models.Person, userID uuid.UUID) (*models.Person, error)
	DeletePerson(ctx context.Context, id uint, userID uuid.UUID) (bool, error)
}

// UsersRepository persists accounts.
type UsersRepository interface {
	AddUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	CountUsers(ctx context.Context) (int64, error)
}
