package v1

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"
)

// bindError turns gin binding failures into a 400 with readable field
// messages instead of validator's raw struct-path output.
func bindError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return apperror.BadRequest(validation.FormatValidationErrors(validationErrors))
	}
	return apperror.BadRequest("Invalid request body")
}

// requireUUID rejects malformed path IDs before they reach the database.
func requireUUID(id, message string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.BadRequest(message)
	}
	return nil
}
