package validation

import (
	"fmt"
	"regexp"
)

// Error is a request-validation failure. Handlers map it to 400 with the
// detail message in the body.
type Error struct {
	Detail string
}

func (e *Error) Error() string {
	return e.Detail
}

// Errorf builds a validation error with a formatted detail message.
func Errorf(format string, args ...interface{}) *Error {
	return &Error{Detail: fmt.Sprintf(format, args...)}
}

// emailRe is deliberately permissive: something@something.something, no
// whitespace, no second @.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// OneOf reports whether v equals one of the allowed values. Empty v is the
// caller's concern (optional fields skip the check entirely).
func OneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
