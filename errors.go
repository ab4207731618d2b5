package fieldvalidation

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// ErrInvalidRule is wrapped by every [ConfigError].
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidForm is returned when a request body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrUnsupportedMediaType is returned for request bodies that are not
	// form, multipart or JSON encoded.
	ErrUnsupportedMediaType = errors.New("unsupported media type")
)

// ConfigError reports a rule registration that is not a [Rule]. It is a
// programmer error, raised when the Validator is configured.
type ConfigError struct {
	Field string
	Type  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s rule must implement fieldvalidation.Rule, %q given", e.Field, e.Type)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidRule
}

// ValidationErrors is a map of field names to their validation errors.
// It is an alias for [validation.Errors] from ozzo-validation and implements
// the error interface with a JSON-friendly string representation.
type ValidationErrors = validation.Errors
