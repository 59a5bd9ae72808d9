// Package validation contains custom validation functions for the application to use for input validation.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ItemValidator rejects item values that are empty or whitespace only.
// The "required" tag alone still accepts a string of spaces.
func ItemValidator(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// New returns a validator with the application's custom validators registered.
func New() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("itemValidator", validator.Func(func(fl validator.FieldLevel) bool {
		return ItemValidator(fl)
	}))
	return validate
}
