package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every field failure for a request so the error
// handler can render them as a structured list.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface. Rule failures come back as
// a *ValidationError; anything else is a programming error and is returned
// as-is.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single validator failure into a field/message pair.
func fieldError(fe validator.FieldError) FieldError {
	field := strings.ToLower(fe.Field())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = field + " is required"
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
	return FieldError{Field: field, Message: msg}
}
