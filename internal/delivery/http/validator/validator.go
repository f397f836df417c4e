// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	domainerrors "antigaspi/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a single validator instance shared by all requests.
type echoValidator struct {
	validate *playground.Validate
}

// New builds the echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks the bound input against its struct tags. Failures surface
// as the application's validation error with the field details attached.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
