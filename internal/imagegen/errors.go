package imagegen

import (
	"errors"
	"fmt"

	"cardsmith/internal/domain"
)

// ErrorKind classifies a generation failure. Callers persist the kind, never
// the transport detail.
type ErrorKind string

const (
	ErrorKindAuth        ErrorKind = "auth"
	ErrorKindRateLimited ErrorKind = "rate_limited"
	ErrorKindUnavailable ErrorKind = "unavailable"
	ErrorKindBadRequest  ErrorKind = "bad_request"
	ErrorKindTimeout     ErrorKind = "timeout"
)

// Error is a classified backend failure. It unwraps to ErrProviderFailure so
// service code can match the whole family with errors.Is.
type Error struct {
	Kind   ErrorKind
	Status int
	Msg    string
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Status != 0:
		return fmt.Sprintf("imagegen: %s: %s (http %d)", e.Kind, e.Msg, e.Status)
	case e.Status != 0:
		return fmt.Sprintf("imagegen: %s (http %d)", e.Kind, e.Status)
	default:
		return fmt.Sprintf("imagegen: %s: %s", e.Kind, e.Msg)
	}
}

func (e *Error) Unwrap() error { return domain.ErrProviderFailure }

// KindOf extracts the classification from an error chain.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func classify(status int) ErrorKind {
	switch {
	case status == 401 || status == 403:
		return ErrorKindAuth
	case status == 429:
		return ErrorKindRateLimited
	case status >= 500:
		return ErrorKindUnavailable
	default:
		return ErrorKindBadRequest
	}
}

func statusError(status int, msg string) *Error {
	return &Error{Kind: classify(status), Status: status, Msg: msg}
}
