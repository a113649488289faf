package repositories

import (
	"context"
	"errors"
	"fmt"

	"contacts-manager/backend/models"

	"gorm.io/gorm"
)

// CountriesGorm is the gorm-backed CountriesRepository.
type CountriesGorm struct {
	db *gorm.DB
}

// NewCountriesRepository returns a CountriesRepository over db.
func NewCountriesRepository(db *gorm.DB) *CountriesGorm {
	return &CountriesGorm{db: db}
}

func (r *CountriesGorm) AddCountry(ctx context.Context, country *models.Country) (*models.Country, error) {
	if err := r.db.WithContext(ctx).Create(country).Error; err != nil {
		return nil, translate(err)
	}
	return country, nil
}

func (r *CountriesGorm) GetAllCountries(ctx context.Context) ([]models.Country, error) {
	var countries []models.Country
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *CountriesGorm) GetCountryByID(ctx context.Context, id uint) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).First(&country, id).Error
	return firstOrNil(&country, err)
}

func (r *CountriesGorm) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	var country models.Country
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&country).Error
	return firstOrNil(&country, err)
}

// firstOrNil turns gorm's not-found error into a nil result.
func firstOrNil[T any](row *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// translate maps gorm's dialect-neutral constraint errors to the package
// sentinels. It needs gorm.Config.TranslateError.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %w", ErrMissingReference, err)
	}
	return err
}
