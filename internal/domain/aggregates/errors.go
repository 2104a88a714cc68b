package aggregates

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode classifies why an aggregate write failed. The HTTP layer maps
// each code to one status.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "validation"
	CodeNotFound           ErrorCode = "not_found"
	CodeForbidden          ErrorCode = "forbidden"
	CodeConflict           ErrorCode = "conflict"
	CodeInvariantViolation ErrorCode = "invariant_violation"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

type Error struct {
	Code ErrorCode
	// Op names the write, e.g. "Content.Favorites.Add".
	Op string
	// Message is safe to show to API clients.
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	head := e.Op
	if e.Message != "" {
		if head != "" {
			head += ": "
		}
		head += e.Message
	}
	if head == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s (%s)", head, e.Code)
}

func (e *Error) Unwrap() error { return e.Cause }

func NewError(code ErrorCode, op, message string, cause error) error {
	return &Error{
		Code:    code,
		Op:      strings.TrimSpace(op),
		Message: strings.TrimSpace(message),
		Cause:   cause,
	}
}

// Wrap gives err a code, reusing its text as the message.
func Wrap(code ErrorCode, op string, err error) error {
	if err == nil {
		return nil
	}
	return NewError(code, op, err.Error(), err)
}

func asError(err error) (*Error, bool) {
	var aggErr *Error
	ok := errors.As(err, &aggErr)
	return aggErr, ok
}

// CodeOf returns "" when err carries no aggregate code.
func CodeOf(err error) ErrorCode {
	if aggErr, ok := asError(err); ok {
		return aggErr.Code
	}
	return ""
}

func IsCode(err error, code ErrorCode) bool {
	got := CodeOf(err)
	return got != "" && got == code
}

// MessageOf returns the client-facing text of err.
func MessageOf(err error) string {
	aggErr, ok := asError(err)
	switch {
	case !ok && err == nil:
		return ""
	case !ok:
		return err.Error()
	case aggErr.Message != "":
		return aggErr.Message
	default:
		return string(aggErr.Code)
	}
}
