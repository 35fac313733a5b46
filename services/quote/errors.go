package quote

import (
	"errors"
	"fmt"
)

// Error codes for quote/inspiration generation failures.
const (
	CodeServiceUnavailable = "serviceUnavailable"
	CodeUpstream           = "upstreamRequest"
	CodeMalformedResponse  = "malformedResponse"
)

// Error carries a machine code alongside the customer-facing message.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// CodeOf returns the quote error code of err, or "" when err is not a
// quote error.
func CodeOf(err error) string {
	var qe *Error
	if errors.As(err, &qe) {
		return qe.Code
	}
	return ""
}

// IsServiceUnavailable reports whether err is a missing-credential
// fail-fast error.
func IsServiceUnavailable(err error) bool {
	return CodeOf(err) == CodeServiceUnavailable
}

// IsRetryable reports whether the caller may retry the same request.
// Upstream and malformed-response failures are treated identically.
func IsRetryable(err error) bool {
	code := CodeOf(err)
	return code == CodeUpstream || code == CodeMalformedResponse
}
