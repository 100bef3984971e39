package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/smartmap-web/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - struct validation; failures come back as errors.ErrInvalidRequest
// with one detail entry per offending field
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.ErrInvalidRequest.WithMessage(err.Error())
	}

	details := make(map[string]interface{}, len(validationErrors))
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details[fe.Field()] = fmt.Sprintf("failed on '%s'", fe.Tag())
		fields = append(fields, fe.Field())
	}

	return errors.ErrInvalidRequest.
		WithMessage("Invalid request parameters: " + strings.Join(fields, ", ")).
		WithDetails(details)
}

// GetValidator - access for custom rule registration
func GetValidator() *validator.Validate {
	return validate
}
