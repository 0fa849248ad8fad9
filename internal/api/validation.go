package api

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationFailed formats a request binding error into the standard error
// body. Field-level messages are included when the underlying error carries
// them; a malformed JSON body yields an empty details map.
func ValidationFailed(err error) ErrorResponse {
	details := map[string]interface{}{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details[fe.Field()] = fieldErrorMessage(fe)
		}
	}

	return NewError("request validation failed", "validation_error", details)
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return fe.Field() + " must be a valid email address"
	case "min":
		return fe.Field() + " must be at least " + fe.Param() + " characters"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be greater than or equal to " + fe.Param()
	case "lte":
		return fe.Field() + " must be less than or equal to " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}
