package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateInput, Input{})
	return v
}

// validateInput requires an http(s) URL when the input is fetched remotely.
func validateInput(sl validator.StructLevel) {
	input, ok := sl.Current().Interface().(Input)
	if !ok || !input.FromURL || input.Target == "" {
		return
	}
	if err := sl.Validator().Var(input.Target, "http_url"); err != nil {
		sl.ReportError(input.Target, "target", "Target", "http_url", "")
	}
}

// Validate checks cfg and returns ErrNoProjects or one ConfigError per
// invalid field, joined.
func Validate(cfg Config) error {
	if len(cfg.Projects) == 0 {
		return ErrNoProjects
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config: validate: %w", err)
	}

	errs := make([]error, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		errs = append(errs, &ConfigError{
			Field:   fieldPath(fieldErr.Namespace()),
			Message: messageFor(fieldErr),
		})
	}
	return errors.Join(errs...)
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(err.Param(), " ", ", ")
	case "excludesall":
		return fmt.Sprintf("must not contain %q", err.Param())
	case "http_url":
		return "must be an http(s) URL when from_url is set"
	default:
		return fmt.Sprintf("failed %q validation", err.Tag())
	}
}
