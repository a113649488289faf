package services

import (
	"errors"

	"contacts-manager/backend/models"
	"contacts-manager/backend/repositories"
)

// Sentinel errors returned (wrapped) by the services. Callers match them
// with errors.Is.
var (
	ErrNullArgument       = errors.New("required argument is missing")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateName      = errors.New("country name already exists")
	ErrNotFound           = repositories.ErrNotFound
	ErrUnknownField       = models.ErrUnknownField
	ErrSheetNotFound      = errors.New("worksheet not found")
	ErrInvalidFile        = errors.New("file is not a valid xlsx workbook")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account is locked")
	ErrWeakPassword       = errors.New("password does not meet the policy")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
