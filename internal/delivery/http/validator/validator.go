// Package validator bridges go-playground/validator into echo's Validator
// interface so handlers can validate bound request payloads.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/errors"
)

// CustomValidator wraps a single shared validate instance; it caches struct
// metadata and is safe for concurrent use.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound payload against its validate tags. Failures are
// surfaced as the validation error of the domain taxonomy with the offending
// fields in the details.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
