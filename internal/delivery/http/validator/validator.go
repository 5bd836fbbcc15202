// Package validator adapts go-playground/validator for echo.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator wraps the validator instance as an echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds the request validator used by the echo server.
func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
