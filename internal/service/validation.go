package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-shop-api/internal/validators"
)

// validateRequest runs v on req and tags a rejected request with ErrValidation.
func validateRequest(ctx context.Context, v validators.Validator, req any) error {
	err := v.Validate(ctx, req)
	if err == nil {
		return nil
	}

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Errorf("%w: %w", ErrValidation, validationErr)
	}
	return fmt.Errorf("request validation failed: %w", err)
}

// newValidationError builds an ErrValidation-tagged error carrying message.
func newValidationError(field, message string) error {
	return fmt.Errorf("%w: %w", ErrValidation, &validators.ValidationError{Field: field, Tag: "required", Message: message})
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
