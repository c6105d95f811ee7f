package utils

import "regexp"

// Digits, dashes and an optional leading +; length bounded by the phone
// column width.
var phoneRegex = regexp.MustCompile(`^\+?[0-9\-]{9,20}$`)

// IsValidPhoneNumber checks if a string is a plausible phone number
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phone)
}
