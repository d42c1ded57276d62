package utils

import (
	"reflect"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-playground/validator/v10"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
)

// RequestValidator adapts go-playground/validator to echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate returns an errs ValidationError describing the first failing field.
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errs.Validation("invalid request: %s", err.Error())
	}

	fe := verrs[0]
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "required":
		return errs.Validation("%s is required", path)
	case "min":
		if fe.Kind() == reflect.String {
			return errs.Validation("%s must be at least %s characters", path, fe.Param())
		}
		return errs.Validation("%s must be at least %s", path, fe.Param())
	case "gt":
		return errs.Validation("%s must be greater than %s", path, fe.Param())
	default:
		return errs.Validation("%s is invalid", path)
	}
}
