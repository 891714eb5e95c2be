// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "coursebridge/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a go-playground validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator registered on the Echo server.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags on bound request DTOs. Violations surface as
// the VALIDATION_FAILED taxonomy error with field details attached, so the
// central error handler renders them as a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
