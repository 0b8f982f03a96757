// ABOUTME: This file wraps the go-playground validator for Echo request binding
// ABOUTME: Struct tags drive validation; errors use JSON field names
package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator adapts go-playground/validator to the echo.Validator interface.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator that reports errors using JSON field names.
func New() *Validator {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &Validator{validate: validate}
}

// Validate validates a struct against its validate tags.
func (v *Validator) Validate(i any) error {
	return v.validate.Struct(i)
}
