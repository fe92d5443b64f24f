// Package validation holds the shared struct validator used by the record packages.
package validation

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidRecord is returned when a record fails validation.
var ErrInvalidRecord = errors.New("invalid record")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})

	return validate
}

// Struct validates the given record against its `validate` tags.
// Field failures are flattened into a single ErrInvalidRecord.
func Struct(record any) error {
	err := instance().Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("failed to validate record: %w", err)
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		problems = append(problems, describe(fieldError))
	}

	return fmt.Errorf("%w: %s", ErrInvalidRecord, strings.Join(problems, "; "))
}

func describe(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Field())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", fieldError.Field(), fieldError.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", fieldError.Field(), fieldError.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s long", fieldError.Field(), fieldError.Param())
	case "number":
		return fmt.Sprintf("%s must contain only digits", fieldError.Field())
	case "numeric":
		return fmt.Sprintf("%s must be a number", fieldError.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldError.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fieldError.Field(), fieldError.Param())
	default:
		return fmt.Sprintf("%s failed the '%s' check", fieldError.Field(), fieldError.Tag())
	}
}
