package serverutils

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Session ids are opaque but constrained: letters, digits, dash and
// underscore only. Same rule the clients generate against.
var sessionIdPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// Tag used on every session_id field.
	_ = v.RegisterValidation("session_id", func(fl validator.FieldLevel) bool {
		return sessionIdPattern.MatchString(fl.Field().String())
	})
	return v
}

// ValidateRequest runs struct-tag validation on a parsed request body.
func ValidateRequest(req interface{}) error {
	return validate.Struct(req)
}
