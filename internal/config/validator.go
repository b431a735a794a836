package config

import (
	"fmt"
	"net/url"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	relaxerrors "github.com/alexisbeaulieu97/relax/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("base_url", func(fl validator.FieldLevel) bool {
			parsed, err := url.Parse(fl.Field().String())
			if err != nil {
				return false
			}
			scheme := strings.ToLower(parsed.Scheme)
			return (scheme == "http" || scheme == "https") && parsed.Host != ""
		})

		_ = v.RegisterValidation("log_level", func(fl validator.FieldLevel) bool {
			_, err := zerolog.ParseLevel(strings.ToLower(fl.Field().String()))
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return relaxerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return relaxerrors.NewValidationError(field, msg, err)
	}

	return relaxerrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the yaml-tagged namespace.
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
