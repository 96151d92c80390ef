// Package validation checks documents against the field rules declared for
// their type.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"woosync/internal/logger"
	"woosync/internal/models"
)

type Validator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func New(logger *logger.Logger) *Validator {
	validate := validator.New()
	validate.RegisterTagNameFunc(jsonName)

	return &Validator{
		validate: validate,
		logger:   logger,
	}
}

// FieldError describes one failed rule.
type FieldError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (v *Validator) ValidateSettings(settings *models.Settings) []FieldError {
	return v.check(settings)
}

func (v *Validator) ValidateProduct(product *models.Product) []FieldError {
	v.logger.Debug("Validating product document %s", product.ID)
	return v.check(product)
}

func (v *Validator) ValidateFields(fields models.ProductFields) []FieldError {
	return v.check(fields)
}

func (v *Validator) check(s interface{}) []FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: message(e),
		})
	}
	return fieldErrors
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "url":
		return e.Field() + " must be an absolute URL"
	case "gt":
		return e.Field() + " must be a positive integer"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " is invalid"
	}
}

// Messages joins field errors into a single line.
func Messages(fieldErrors []FieldError) string {
	messages := make([]string, 0, len(fieldErrors))
	for _, e := range fieldErrors {
		messages = append(messages, e.Message)
	}
	return strings.Join(messages, "; ")
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
