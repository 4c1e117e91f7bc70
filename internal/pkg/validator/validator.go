package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = message(err)
	}

	return errors
}

// ValidateVar validates a single value against a tag and returns a
// human-readable message, or "" when the value is valid.
func ValidateVar(field interface{}, tag string) string {
	err := validate.Var(field, tag)
	if err == nil {
		return ""
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "Invalid value"
	}
	return message(errs[0])
}

func message(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return "Value is too short (min: " + err.Param() + ")"
	case "max":
		return "Value is too long (max: " + err.Param() + ")"
	case "uuid":
		return "Invalid UUID"
	default:
		return "Invalid value"
	}
}
