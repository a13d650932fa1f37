package apiutil

import (
	"reflect"
	"strings"

	"github.com/Aidin1998/userfeed/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a Validator that reports fields by their json name.
func NewValidator() *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate}
}

type Validator struct {
	validator *validator.Validate
}

// Validate checks i against its validate tags. Failures come back as an
// invalid_argument error with one field entry per broken rule.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		validationErr := errors.Invalid.Explain("validation error")
		var fieldsError validator.ValidationErrors
		if errors.As(err, &fieldsError) {
			for _, fieldErr := range fieldsError {
				validationErr = validationErr.WithField(fieldErr.Field(), fieldErr.Tag(), fieldMessage(fieldErr))
			}
		}
		return validationErr
	}
	return nil
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	default:
		return fe.Field() + " failed " + fe.Tag()
	}
}
