package repositories

import (
	"context"

	"contacts-manager/backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsersGorm is the gorm-backed UsersRepository.
type UsersGorm struct {
	db *gorm.DB
}

// NewUsersRepository returns a UsersRepository over db.
func NewUsersRepository(db *gorm.DB) *UsersGorm {
	return &UsersGorm{db: db}
}

func (r *UsersGorm) AddUser(ctx context.Context, user *models.User) (*models.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, translate(err)
	}
	return user, nil
}

func (r *UsersGorm) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	return firstOrNil(&user, err)
}

// GetUserByEmail matches the address case-insensitively.
func (r *UsersGorm) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&user).Error
	return firstOrNil(&user, err)
}

func (r *UsersGorm) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UsersGorm) UpdateUser(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *UsersGorm) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}
