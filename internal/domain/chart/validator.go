package chart

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("yaml"), ",")
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("hexcolor_opt", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" {
				return true
			}
			return ValidColor(value)
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator for use by loaders that decode
// chart definitions.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidColor reports whether value is a #rrggbb colour.
func ValidColor(value string) bool {
	if len(value) != 7 {
		return false
	}
	_, err := colorful.Hex(value)
	return err == nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := ve.Field()
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return newInvalidOptionError(field, msg, err)
	}

	return newInvalidOptionError("options", err.Error(), err)
}
