package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// reason turns a rule failure into text a client can act on.
func reason(fe validator.FieldError, present bool) string {
	strLike := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		if present && strLike {
			return "must not be empty"
		}
		if present {
			return "must not be zero"
		}
		return "is required"
	case "required_without":
		return "is required unless " + strings.ToLower(fe.Param()) + " is provided"
	case "min", "gte":
		if strLike {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		if strLike {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "email":
		return "must be a valid email address"
	case "url", "http_url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "alphanum":
		return "must contain only letters and digits"
	case "notfuture":
		return "must not be in the future"
	case "strongpassword":
		return "must be at least 8 characters with a letter and a digit"
	case "platformcode":
		return "must be 1 to 16 letters, digits, '-' or '_'"
	}
	return fmt.Sprintf("failed the %s rule", fe.Tag())
}
