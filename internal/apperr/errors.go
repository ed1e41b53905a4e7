package apperr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Kind is one member of the closed error taxonomy. Every failure that
// crosses the remote or repository boundary is classified into exactly
// one kind; raw transport errors never escape those layers.
type Kind string

const (
	KindNetwork      Kind = "network"
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindRateLimited  Kind = "rate_limited"
	KindServer       Kind = "server"
	KindValidation   Kind = "validation"
	KindParse        Kind = "parse"
	KindUnknown      Kind = "unknown"
)

// Error is a classified application error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

// NewValidation builds a caller-input error. Its message is shown to
// the user verbatim, unlike the per-kind default messages.
func NewValidation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// KindOf extracts the kind of an error chain. Plain errors report
// KindUnknown.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// FromStatusCode classifies a non-2xx HTTP response status.
func FromStatusCode(status int) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return New(KindUnauthorized, "unauthorized request")
	case status == http.StatusForbidden:
		return New(KindForbidden, "access forbidden")
	case status == http.StatusNotFound:
		return New(KindNotFound, "resource not found")
	case status == http.StatusTooManyRequests:
		return New(KindRateLimited, "rate limit exceeded")
	case status >= 500:
		return New(KindServer, fmt.Sprintf("server error: status %d", status))
	default:
		return New(KindUnknown, fmt.Sprintf("unexpected status %d", status))
	}
}

// Classify wraps an arbitrary error into a classified one. Already
// classified errors pass through unchanged.
func Classify(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}

	var jsonSyntaxErr *json.SyntaxError
	var jsonTypeErr *json.UnmarshalTypeError
	if errors.As(err, &jsonSyntaxErr) || errors.As(err, &jsonTypeErr) {
		return Wrap(KindParse, "malformed response body", err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return Wrap(KindNetwork, "request interrupted", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return Wrap(KindNetwork, "network failure", err)
	}

	return Wrap(KindUnknown, "unexpected error", err)
}
