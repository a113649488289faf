package repositories

import (
	"context"

	"contacts-manager/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PersonsGorm is the gorm-backed PersonsRepository.
type PersonsGorm struct {
	db *gorm.DB
}

// NewPersonsRepository returns a PersonsRepository over db.
func NewPersonsRepository(db *gorm.DB) *PersonsGorm {
	return &PersonsGorm{db: db}
}

// owned scopes a query to one user's rows with Country loaded.
func (r *PersonsGorm) owned(ctx context.Context, userID uuid.UUID) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Country").Where("user_id = ?", userID)
}

// AddPerson inserts person and returns it with Country loaded.
func (r *PersonsGorm) AddPerson(ctx context.Context, person *models.Person) (*models.Person, error) {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(person).Error; err != nil {
		return nil, translate(err)
	}
	return r.reload(ctx, person)
}

func (r *PersonsGorm) GetAllPersons(ctx context.Context, userID uuid.UUID) ([]models.Person, error) {
	var people []models.Person
	if err := r.owned(ctx, userID).Order("id ASC").Find(&people).Error; err != nil {
		return nil, err
	}
	return people, nil
}

func (r *PersonsGorm) GetPersonByID(ctx context.Context, id uint, userID uuid.UUID) (*models.Person, error) {
	var person models.Person
	err := r.owned(ctx, userID).Where("id = ?", id).First(&person).Error
	return firstOrNil(&person, err)
}

// GetFilteredPersons returns the user's persons for which predicate holds.
// A nil predicate matches everything.
func (r *PersonsGorm) GetFilteredPersons(ctx context.Context, userID uuid.UUID, predicate func(*models.Person) bool) ([]models.Person, error) {
	people, err := r.GetAllPersons(ctx, userID)
	if err != nil || predicate == nil {
		return people, err
	}

	matched := make([]models.Person, 0, len(people))
	for i := range people {
		if predicate(&people[i]) {
			matched = append(matched, people[i])
		}
	}
	return matched, nil
}

// UpdatePerson overwrites the editable columns of the user's row with the
// same ID. Returns ErrNotFound when the user has no such row.
func (r *PersonsGorm) UpdatePerson(ctx context.Context, person *models.Person, userID uuid.UUID) (*models.Person, error) {
	existing, err := r.GetPersonByID(ctx, person.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	existing.Name = person.Name
	existing.Email = person.Email
	existing.Phone = person.Phone
	existing.DateOfBirth = person.DateOfBirth
	existing.CountryID = person.CountryID
	existing.Address = person.Address
	existing.Country = nil

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(existing).Error; err != nil {
		return nil, translate(err)
	}
	return r.reload(ctx, existing)
}

func (r *PersonsGorm) DeletePerson(ctx context.Context, id uint, userID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&models.Person{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *PersonsGorm) reload(ctx context.Context, person *models.Person) (*models.Person, error) {
	var loaded models.Person
	if err := r.owned(ctx, person.UserID).Where("id = ?", person.ID).First(&loaded).Error; err != nil {
		return nil, err
	}
	return &loaded, nil
}
