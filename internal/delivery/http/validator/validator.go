// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "crosslink/internal/domain/errors"
)

// echoValidator wraps a single validator instance; the instance caches struct
// metadata and is safe for concurrent use.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the validator used by every echo server in the project.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
