package validation

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FailedField runs the struct-tag rules on v and returns the name of
// the first offending field, or "" when the value passes. Handlers map
// the field name to the user-facing message.
func FailedField(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return errs[0].Field()
	}
	return "payload"
}
