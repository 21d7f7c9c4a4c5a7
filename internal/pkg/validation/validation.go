package validation

import (
	"reflect"
	"strings"

	"github.com/feliperb/gympoint/internal/app/models/dto"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator builds the validator used for request schemas. Field names in
// messages come from the json tag so they match the wire format.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a request DTO against its validate tags and returns the
// per-field failure messages in struct declaration order. A nil slice means
// the value is valid.
func Struct(obj interface{}) []dto.ValidationMessage {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.ValidationMessage{{Message: err.Error()}}
	}

	messages := make([]dto.ValidationMessage, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, dto.ValidationMessage{
			Message: formatFieldError(fieldErr),
			Field:   fieldErr.Field(),
		})
	}
	return messages
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is a required field"
	case "email":
		return e.Field() + " must be a valid email"
	case "gt":
		if e.Param() == "0" {
			return e.Field() + " must be a positive number"
		}
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}
