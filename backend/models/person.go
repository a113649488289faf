package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Person is a contact owned by exactly one user.
type Person struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:40" json:"name"`
	Email       string     `gorm:"size:40" json:"email"`
	Phone       string     `gorm:"size:20" json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CountryID   *uint      `gorm:"index" json:"country_id"`
	Country     *Country   `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	Address     string     `gorm:"size:100" json:"address"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName explicitly sets the table name for GORM.
func (Person) TableName() string {
	return "people"
}

// PersonAddRequest is the input for adding a person.
type PersonAddRequest struct {
	Name        string     `json:"name" validate:"required,max=40" errmsg:"required=Person Name can't be blank|max=Person Name can't exceed 40 characters"`
	Email       string     `json:"email" validate:"required,email,max=40" errmsg:"required=Email can't be blank|email=Must supply a valid email address|max=Email can't exceed 40 characters"`
	Phone       string     `json:"phone" validate:"omitempty,max=20,phone" errmsg:"phone=Invalid phone number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CountryID   *uint      `json:"country_id"`
	Address     string     `json:"address" validate:"max=100" errmsg:"max=Address can't exceed 100 characters"`
	UserID      uuid.UUID  `json:"-"`
}

// ToPerson converts the request to an entity.
func (r PersonAddRequest) ToPerson() Person {
	return Person{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		CountryID:   r.CountryID,
		Address:     r.Address,
		UserID:      r.UserID,
	}
}

// PersonUpdateRequest carries the new values for an existing person.
type PersonUpdateRequest struct {
	ID          uint       `json:"id" validate:"required" errmsg:"required=PersonId cannot be blank"`
	Name        string     `json:"name" validate:"required,max=40" errmsg:"required=Person Name can't be blank|max=Person Name can't exceed 40 characters"`
	Email       string     `json:"email" validate:"required,email,max=40" errmsg:"required=Email can't be blank|email=Must supply a valid email address|max=Email can't exceed 40 characters"`
	Phone       string     `json:"phone" validate:"omitempty,max=20,phone" errmsg:"phone=Invalid phone number"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CountryID   *uint      `json:"country_id"`
	Address     string     `json:"address" validate:"max=100" errmsg:"max=Address can't exceed 100 characters"`
	UserID      uuid.UUID  `json:"-"`
}

// ToPerson converts the request to an entity.
func (r PersonUpdateRequest) ToPerson() Person {
	return Person{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		DateOfBirth: r.DateOfBirth,
		CountryID:   r.CountryID,
		Address:     r.Address,
		UserID:      r.UserID,
	}
}

// PersonResponse is the read-only view of a Person with computed fields.
type PersonResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	CountryID   *uint      `json:"country_id"`
	Country     string     `json:"country"`
	Address     string     `json:"address"`
	Age         *int       `json:"age"`
	UserID      uuid.UUID  `json:"user_id"`
}

// ToPersonResponse maps an entity to its projection. now is the instant the
// age is computed against.
func ToPersonResponse(p Person, now time.Time) PersonResponse {
	resp := PersonResponse{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
		CountryID:   p.CountryID,
		Address:     p.Address,
		UserID:      p.UserID,
	}
	if p.Country != nil {
		resp.Country = p.Country.Name
	}
	if p.DateOfBirth != nil {
		age := AgeAt(*p.DateOfBirth, now)
		resp.Age = &age
	}
	return resp
}

// AgeAt returns the whole years between dob and now, counting a year as
// 365.25 days and rounding half to even.
func AgeAt(dob, now time.Time) int {
	days := now.Sub(dob).Hours() / 24
	return int(math.RoundToEven(days / 365.25))
}

// ToPersonUpdateRequest prefills an update form from a projection.
func (p PersonResponse) ToPersonUpdateRequest() PersonUpdateRequest {
	return PersonUpdateRequest{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		DateOfBirth: p.DateOfBirth,
		CountryID:   p.CountryID,
		Address:     p.Address,
		UserID:      p.UserID,
	}
}

// Equal compares two projections field by field, dereferencing optional values.
func (p PersonResponse) Equal(o PersonResponse) bool {
	return p.ID == o.ID &&
		p.Name == o.Name &&
		p.Email == o.Email &&
		p.Phone == o.Phone &&
		equalTime(p.DateOfBirth, o.DateOfBirth) &&
		equalPtr(p.CountryID, o.CountryID) &&
		p.Country == o.Country &&
		p.Address == o.Address &&
		equalPtr(p.Age, o.Age) &&
		p.UserID == o.UserID
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
