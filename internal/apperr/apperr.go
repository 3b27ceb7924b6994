// Package apperr classifies request failures for the HTTP boundary.
package apperr

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

const (
	KindValidation    = "validation"
	KindConfiguration = "configuration"
	KindUpstream      = "upstream"
	KindBadGateway    = "bad_gateway"
	KindInternal      = "internal"
)

// Error is the one failure type that crosses package boundaries. Status is
// the HTTP status the request boundary answers with; every failure is
// terminal for its request.
type Error struct {
	Kind    string
	Status  int
	Message string
	Fields  []string // validation: the offending input fields
	Body    string   // upstream: gateway response body, passed through
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports missing or malformed input.
func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message, Fields: fields}
}

// Configuration reports unusable server-side gateway credentials.
func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Status: http.StatusInternalServerError, Message: message}
}

// Upstream reports a failure the gateway answered with; its status and body
// travel through unchanged.
func Upstream(status int, body string) *Error {
	return &Error{Kind: KindUpstream, Status: status, Message: "gateway rejected the request", Body: body}
}

// BadGateway reports a gateway reply that could not be interpreted.
func BadGateway(message, body string) *Error {
	return &Error{Kind: KindBadGateway, Status: http.StatusBadGateway, Message: message, Body: body}
}

// Internal wraps anything unexpected.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// From normalizes err to an *Error. Timeouts on the outbound call surface as
// upstream gateway timeouts; anything unrecognized becomes internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var nerr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &nerr) && nerr.Timeout()) {
		return &Error{Kind: KindUpstream, Status: http.StatusGatewayTimeout, Message: "gateway timed out", Err: err}
	}

	return Internal(err)
}
