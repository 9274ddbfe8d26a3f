// Package validate holds the stateless syntax predicates used to gate
// supplier saves. Both fields are optional, so the empty string is valid;
// any other value must match the respective pattern.
package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var v = validator.New()

// phoneRe accepts North American numbering plan numbers: an optional +1
// country code, a required area code with or without parentheses, dot/dash/
// space separators, and an optional extension suffix (#, x, ext, extension).
var phoneRe = regexp.MustCompile(
	`^(?:\+?1\s*(?:[.-]\s*)?)?` + // optional country code
		`(?:\(\s*([2-9][0-9]{2})\s*\)|([2-9][0-9]{2}))` + // area code
		`\s*(?:[.-]\s*)?([0-9]{3})` + // exchange
		`\s*(?:[.-]\s*)?([0-9]{4})` + // line number
		`(?:\s*(?:#|x\.?|ext\.?|extension)\s*(\d+))?$`) // extension

// IsValidEmail reports whether s is empty or a syntactically valid address.
func IsValidEmail(s string) bool {
	if s == "" {
		return true
	}
	return v.Var(s, "email") == nil
}

// IsValidPhone reports whether s is empty or a valid NANP number. A bare
// seven-digit number without an area code is rejected.
func IsValidPhone(s string) bool {
	if s == "" {
		return true
	}
	return phoneRe.MatchString(s)
}
