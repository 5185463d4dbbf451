package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ownmsg/message-service/internal/model"
)

const (
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 50
)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// report JSON field names, not Go struct field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateSendMessage checks every field of the request in one pass, so the
// caller sees all violations at once instead of the first one only.
func (v *Validator) ValidateSendMessage(input *model.SendMessageInput) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return model.NewValidationError("", err.Error())
	}

	fields := make([]model.FieldError, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, model.FieldError{
			Field:   fieldErr.Field(),
			Message: fieldMessage(fieldErr),
		})
	}

	return &model.ValidationError{Fields: fields}
}

// ValidateLimit rejects out-of-range limits instead of clamping them.
func (v *Validator) ValidateLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return model.NewValidationError("limit",
			fmt.Sprintf("limit must be between %d and %d", MinLimit, MaxLimit))
	}
	return nil
}

func fieldMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fieldErr.Field(), fieldErr.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s is invalid", fieldErr.Field())
	}
}
