package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/twodo/internal/logging"
	"github.com/thenoetrevino/twodo/internal/models"
)

// validate is the shared validator instance for config structs
var validate *validator.Validate

func init() {
	validate = validator.New()

	// report yaml names so messages match what the user wrote
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("category", validateCategory); err != nil {
		panic(fmt.Sprintf("failed to register category validator: %v", err))
	}
	if err := validate.RegisterValidation("log_level", validateLogLevel); err != nil {
		panic(fmt.Sprintf("failed to register log_level validator: %v", err))
	}
}

// validateCategory accepts "work" or "travel" in any case
func validateCategory(fl validator.FieldLevel) bool {
	_, err := models.ParseCategory(fl.Field().String())
	return err == nil
}

// validateLogLevel accepts the levels understood by logging.ParseLevel
func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := logging.ParseLevel(fl.Field().String())
	return err == nil
}

// Validate checks the config after defaults have been applied
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// describe turns a field error into a short message keyed by the yaml path
func describe(fe validator.FieldError) string {
	// drop the leading struct name: "Config.storage.backend" -> "storage.backend"
	path := fe.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", path)
	case "required_if":
		return fmt.Sprintf("%s is required when %s", path, strings.Replace(fe.Param(), " ", "=", 1))
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", path, fe.Param(), fe.Value())
	case "category":
		return fmt.Sprintf("%s must be work or travel, got %q", path, fe.Value())
	case "log_level":
		return fmt.Sprintf("%s must be debug, info, warn or error, got %q", path, fe.Value())
	case "nefield":
		return fmt.Sprintf("%s must differ from %s", path, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", path, fe.Tag())
	}
}
