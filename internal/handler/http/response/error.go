package response

import (
	"errors"
	"net/http"

	"github.com/talentosplus/talentos-backend-go/internal/domain/auth"
	"github.com/talentosplus/talentos-backend-go/internal/domain/employee"
	"github.com/talentosplus/talentos-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Duplicate conflicts keep their original message.
	var dup *employee.DuplicateError
	if errors.As(err, &dup) {
		Conflict(w, dup.Message)
		return
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	default:
		BadRequest(w, err.Error(), nil)
	}
}
