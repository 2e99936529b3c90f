package utils

import (
	goerrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/shelterhq/pawhaven/internal/shared/errors"
)

var validate *validator.Validate

func init() {
	// Share gin's binding engine so ValidateStruct and ShouldBindJSON
	// enforce the same `binding` tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validate = v
	} else {
		validate = validator.New()
		validate.SetTagName("binding")
	}

	// Report fields under their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct validates a struct against its binding tags and returns a
// user-friendly error
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !goerrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.NewValidationError("validation failed")
	}

	return errors.NewValidationError(
		"validation failed",
		joinFieldErrors(fieldErrors),
	)
}

// BindingError converts a ShouldBindJSON failure into a validation error.
// Field validation failures become per-field messages; anything else
// (malformed JSON, type mismatches) keeps the decoder's reason.
func BindingError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !goerrors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return errors.NewValidationError("invalid request body", err.Error())
	}

	return errors.NewValidationError(
		"invalid request body",
		joinFieldErrors(fieldErrors),
	)
}

func joinFieldErrors(fieldErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range fieldErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}
	return strings.Join(messages, "; ")
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, param)
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	case "datetime":
		return fmt.Sprintf("%s must be a valid date in format %s", field, param)
	case "numeric":
		return fmt.Sprintf("%s must be a valid number", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
