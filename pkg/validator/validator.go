package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/DanRulev/wordtrainer/internal/models"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "mapstructure"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
}

// ValidateStruct returns nil or models.ValidationErrors naming every bad field.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	result := make(models.ValidationErrors, 0, len(verrs))
	for _, e := range verrs {
		result = append(result, models.ValidationError{
			Field:   e.Field(),
			Message: message(e),
		})
	}
	return result
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "url":
		return "must be a valid URL"
	}
	return fmt.Sprintf("failed %q (param %q)", e.Tag(), e.Param())
}
