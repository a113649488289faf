package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account that owns Person rows.
type User struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email             string     `gorm:"size:254;uniqueIndex;not null" json:"email"`
	PersonName        string     `gorm:"size:100;not null" json:"person_name"`
	Phone             string     `gorm:"size:20" json:"phone"`
	Password          string     `gorm:"not null" json:"-"` // Stored hashed
	Role              string     `gorm:"size:16;default:'user'" json:"role"`
	CreatedAt         time.Time  `json:"created_at"`
	FailedAttempts    int        `gorm:"default:0" json:"-"`
	LastFailedAttempt *time.Time `json:"-"`
	LockedUntil       *time.Time `json:"-"`
}

// BeforeCreate assigns an ID when the caller did not.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsLocked reports whether the account is locked at the given instant.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && now.Before(*u.LockedUntil)
}

// UserType is the account kind chosen at registration.
type UserType string

const (
	UserTypeUser  UserType = "User"
	UserTypeAdmin UserType = "Admin"
)

// RegisterRequest is the registration form.
type RegisterRequest struct {
	Email           string   `json:"email" validate:"required,email,max=254" errmsg:"required=Email is required|email=Invalid email address"`
	PersonName      string   `json:"person_name" validate:"required,max=100" errmsg:"required=Person name is required"`
	Phone           string   `json:"phone" validate:"required,max=20,phone" errmsg:"required=Phone is required|phone=Invalid phone number"`
	Password        string   `json:"password" validate:"required" errmsg:"required=Password is required"`
	ConfirmPassword string   `json:"confirm_password" validate:"required,eqfield=Password" errmsg:"required=Confirm password is required|eqfield=Password and Confirm Password do not match"`
	UserType        UserType `json:"user_type" validate:"omitempty,oneof=User Admin"`
}

// LoginRequest is the login form.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" errmsg:"required=Email is required|email=Invalid email address"`
	Password string `json:"password" validate:"required" errmsg:"required=Password is required"`
}

// ChangePasswordRequest replaces the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required" errmsg:"required=Old password is required"`
	NewPassword string `json:"new_password" validate:"required" errmsg:"required=New password is required"`
}

// UserSummary is the public view of a User.
type UserSummary struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	PersonName string    `json:"person_name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
	Locked     bool      `json:"locked"`
}

func ToUserSummary(u User) UserSummary {
	return UserSummary{
		ID:         u.ID,
		Email:      u.Email,
		PersonName: u.PersonName,
		Phone:      u.Phone,
		Role:       u.Role,
		CreatedAt:  u.CreatedAt,
		Locked:     u.IsLocked(time.Now()),
	}
}
