package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MsgRequired = "This field is required."
	MsgURL      = "Please enter a valid URL."
	MsgEmail    = "Please enter a valid email address."
)

// Deliberately loose: something@something.tld with no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("notblank", NotBlank)
	_ = v.RegisterValidation("http_url", HTTPURL)
	_ = v.RegisterValidation("loose_email", LooseEmail)
}

// New returns a validator with the profile validators registered.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	RegisterValidators(v)
	return v
}

// IsValidURL reports whether s is an absolute http(s) URL. Empty strings are
// valid; requiredness is a separate rule.
func IsValidURL(s string) bool {
	if s == "" {
		return true
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidEmail reports whether s looks like an email address. Empty strings are valid.
func IsValidEmail(s string) bool {
	if s == "" {
		return true
	}
	return emailRegex.MatchString(s)
}

// NotBlank rejects empty and whitespace-only strings.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func HTTPURL(fl validator.FieldLevel) bool {
	return IsValidURL(fl.Field().String())
}

func LooseEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}
