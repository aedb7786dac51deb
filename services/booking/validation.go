package booking

import "regexp"

// phonePattern matches PH mobile numbers as customers type them:
// exactly 11 digits starting with "09".
var phonePattern = regexp.MustCompile(`^09\d{9}$`)

// ValidPhone reports whether the phone number is an 11-digit local-format
// number beginning with "09".
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(phone)
}
