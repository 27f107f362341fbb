package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinels every layer wraps; the HTTP boundary maps them to status codes.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrRateLimited   = errors.New("rate limited")
)

var statuses = []struct {
	sentinel error
	status   int
}{
	{ErrNotFound, http.StatusNotFound},
	{ErrInvalidInput, http.StatusBadRequest},
	{ErrUnauthorized, http.StatusUnauthorized},
	{ErrForbidden, http.StatusForbidden},
	{ErrAlreadyExists, http.StatusConflict},
	{ErrRateLimited, http.StatusTooManyRequests},
}

// Error attaches a message and an optional machine readable code to a cause.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(message string) error {
	return &Error{Message: message}
}

// Wrap returns nil for a nil err.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Message: message, Err: err}
}

func WrapWithCode(err error, code, message string) error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Message: message, Err: err}
}

// Invalid reports bad caller input, such as an empty caption or a photo without image.
func Invalid(message string) error {
	return WrapWithCode(ErrInvalidInput, "invalid_input", message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetMessage returns the outermost Error message, or err.Error() for foreign errors.
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// HTTPStatus maps err to the status of the first sentinel in its chain, 500 otherwise.
func HTTPStatus(err error) int {
	for _, s := range statuses {
		if errors.Is(err, s.sentinel) {
			return s.status
		}
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool      { return errors.Is(err, ErrNotFound) }
func IsInvalidInput(err error) bool  { return errors.Is(err, ErrInvalidInput) }
func IsUnauthorized(err error) bool  { return errors.Is(err, ErrUnauthorized) }
func IsForbidden(err error) bool     { return errors.Is(err, ErrForbidden) }
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }
func IsRateLimited(err error) bool   { return errors.Is(err, ErrRateLimited) }
