package errors

import "net/http"

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Rejection is an expected, user-facing refusal (bad input, flagged content).
// It travels as a normal error value; handlers map it to its status code.
func Rejection(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: statusCode}
}

// Unavailable marks a failure of an external dependency the caller may retry later.
func Unavailable(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusServiceUnavailable}
}
