// Package validation validates request structs with validator/v10 and turns
// failures into per-field messages keyed by the JSON field name.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Error is a validation failure. Fields maps JSON field names to messages.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldError builds a single field failure.
func FieldError(field, msg string) *Error {
	return &Error{Fields: map[string]string{field: msg}}
}

// price matches a decimal with at most 3 integer digits and 2 fractional ones.
var priceRe = regexp.MustCompile(`^\d{1,3}(\.\d{1,2})?$`)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	// registration of a static tag only fails on an empty tag name.
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return priceRe.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{v: v}
}

func (v *Validator) Validate(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("validate error: %w", err)
	}

	fields := make(map[string]string, len(validationErrs))
	for _, e := range validationErrs {
		fields[fieldName(e)] = message(e)
	}

	return &Error{Fields: fields}
}

// fieldName strips the struct prefix and keeps slice indexes, e.g. "tags[1]".
func fieldName(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "notblank":
		return "may not be blank"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}

		return "must be at least " + e.Param()
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", e.Param())
		}

		return "must not exceed " + e.Param()
	case "url":
		return "must be a valid URL"
	case "price":
		return "must be a decimal with at most 5 digits and 2 decimal places"
	case "gte":
		return "must be greater than or equal to " + e.Param()
	case "gt":
		return "must be greater than " + e.Param()
	default:
		return "is invalid"
	}
}
