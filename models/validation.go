package models

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation messages. Clients match on these, keep them stable.
const (
	MsgNameInvalid        = "Name is required and must be less than 100 characters"
	MsgSurnameInvalid     = "Surname is required and must be less than 100 characters"
	MsgBioInvalid         = "Bio is required and must be less than 250 characters"
	MsgPhoneRequired      = "Phone number is required"
	MsgPhoneFormat        = "Phone number must contain only digits and optionally start with '+'. Length must be between 10 and 15 characters."
	MsgEmailRequired      = "Email is required"
	MsgEmailType          = "Email must be a valid string in the format name@example.com."
	MsgEmailFormat        = `Email must contain only English alphabet letters before and after "@"`
	MsgCategoryIDRequired = "Category ID is required"
)

var (
	phonePattern = regexp.MustCompile(`^\+?\d{10,15}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9._%+-]*@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("contactphone", func(fl validator.FieldLevel) bool {
		return IsValidPhoneNumber(fl.Field().String())
	})
	v.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	return v
}

// IsValidPhoneNumber reports whether s is 10 to 15 digits with an optional
// leading '+'.
func IsValidPhoneNumber(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidEmail reports whether s has non-empty ASCII parts around '@' and
// matches the name@domain.tld shape.
func IsValidEmail(s string) bool {
	parts := strings.Split(s, "@")
	local := parts[0]
	var domain string
	if len(parts) > 1 {
		domain = parts[1]
	}
	if local == "" || domain == "" || !isASCII(local) || !isASCII(domain) {
		return false
	}
	return emailPattern.MatchString(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}

// ValidationError carries the full list of rule violations for an input.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Errors, "; ")
}
