package serverutils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest runs the struct's validate tags. Any failure becomes a
// ValidationError carrying message and the first failing field.
func ValidateRequest(req interface{}, message string) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return NewValidationError(fieldErrs[0].Field(), message)
	}
	return NewValidationError("", message)
}
