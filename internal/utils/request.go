package utils

import (
	"errors"
	"log/slog"
	"net/http"

	apperrors "github.com/foooood/storefront/internal/errors"
	"github.com/foooood/storefront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

// ParseAndValidate decodes the body into dest and validates it, writing the
// error response itself. Returns false when the handler should stop.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		response.Error(w, apperrors.BadRequestError(err.Error()))

		return false
	}

	if err := ValidateStruct(validate, dest); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			response.ValidationError(w, validationErrs)

			return false
		}

		slog.Warn("Validation failed", slog.String("error", err.Error()))
		response.Error(w, apperrors.BadRequestError("invalid input data"))

		return false
	}

	return true
}
