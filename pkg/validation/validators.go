package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	mobileRegex = regexp.MustCompile(`^\d{10}$`)

	upperRegex   = regexp.MustCompile(`[A-Z]`)
	digitRegex   = regexp.MustCompile(`[0-9]`)
	specialRegex = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("mobile_10", Mobile10)
	_ = v.RegisterValidation("strong_password", PasswordStrength)
}

// ValidEmail reports whether the address matches the conventional pattern.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidMobile reports whether the mobile number is exactly 10 digits.
func ValidMobile(mobile string) bool {
	return mobileRegex.MatchString(mobile)
}

// ValidPassword reports whether the password satisfies the strength policy:
// 8-72 bytes with at least one upper-case letter, one digit and one special
// character. The 72-byte ceiling is bcrypt's input limit.
func ValidPassword(password string) bool {
	if len(password) < 8 || len(password) > 72 {
		return false
	}
	if !upperRegex.MatchString(password) {
		return false
	}
	if !digitRegex.MatchString(password) {
		return false
	}
	return specialRegex.MatchString(password)
}

// Mobile10 is the binding-tag form of ValidMobile. Empty values pass, use
// required alongside it when the field is mandatory.
func Mobile10(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return ValidMobile(val)
}

// PasswordStrength is the binding-tag form of ValidPassword.
func PasswordStrength(fl validator.FieldLevel) bool {
	return ValidPassword(fl.Field().String())
}
