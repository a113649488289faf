package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError describes the first constraint a request violated.
type ValidationError struct {
	Field   string
	Tag     string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

var (
	validate     *validator.Validate
	validateOnce sync.Once

	phonePattern = regexp.MustCompile(`^\+?[0-9 ().-]{3,20}$`)
)

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
	})
	return validate
}

// ValidateModel checks the validate tags of obj and returns a
// *ValidationError for the first violated constraint, or nil.
func ValidateModel(obj any) error {
	if obj == nil {
		return fmt.Errorf("%w: model", ErrNullArgument)
	}

	err := validatorInstance().Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate model: %w", err)
	}

	first := fieldErrs[0]
	return &ValidationError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Message: messageFor(obj, first),
	}
}

// messageFor reads the errmsg tag ("tag=message|tag=message") of the failing
// field, falling back to a generic message.
func messageFor(obj any, fe validator.FieldError) string {
	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if field, ok := t.FieldByName(fe.StructField()); ok {
		for _, entry := range strings.Split(field.Tag.Get("errmsg"), "|") {
			tag, msg, found := strings.Cut(entry, "=")
			if found && tag == fe.Tag() {
				return msg
			}
		}
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}
