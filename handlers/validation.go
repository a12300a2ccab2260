package handlers

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
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput checks validate tags on a struct or on every element of a slice.
// The error message lists every failed field: "Invalid: name is required, email is not a valid email".
func validateInput(input interface{}) error {
	var err error
	if reflect.Indirect(reflect.ValueOf(input)).Kind() == reflect.Slice {
		err = validate.Var(input, "dive")
	} else {
		err = validate.Struct(input)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s is %s", fe.Field(), describeRule(fe)))
	}
	return errors.New("Invalid: " + strings.Join(parts, ", "))
}

func describeRule(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return "required"
	case "email":
		return "not a valid email"
	case "max", "lte":
		if isString {
			return fmt.Sprintf("longer than %s characters", fe.Param())
		}
		return fmt.Sprintf("greater than %s", fe.Param())
	case "min", "gte":
		if isString {
			return fmt.Sprintf("shorter than %s characters", fe.Param())
		}
		return fmt.Sprintf("less than %s", fe.Param())
	case "gt":
		return fmt.Sprintf("not greater than %s", fe.Param())
	default:
		return "invalid"
	}
}
