// Package apperr defines the application error taxonomy.
//
// Every service returns one of these typed errors; controllers convert them
// to the uniform JSON envelope with response.FromError. Anything that is not
// an *apperr.Error is treated as an internal error (500).
//
//	if product == nil {
//	    return apperr.NotFound("Product not found")
//	}
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for boundary handling.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindAuthentication Kind = "authentication"
	KindAuthorization  Kind = "authorization"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
)

// Error is a request-boundary error with an HTTP status and client message.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string // field-level messages, validation only
	err     error             // wrapped cause, never sent to the client
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

// Is makes errors.Is match on Kind, so sentinel-style checks work:
//
//	errors.Is(err, apperr.NotFound(""))
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// Wrap attaches a cause for logging while keeping the client message.
func (e *Error) Wrap(cause error) *Error {
	return &Error{Kind: e.Kind, Status: e.Status, Message: e.Message, Fields: e.Fields, err: cause}
}

// Validation reports malformed or missing input (400).
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: message}
}

// ValidationFields reports field-level validation failures (400).
func ValidationFields(fields map[string]string) *Error {
	return &Error{
		Kind:    KindValidation,
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// Authentication reports a missing or invalid token (401).
func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Status: http.StatusUnauthorized, Message: message}
}

// Authorization reports an authenticated caller that is not entitled (403).
// 403 is used uniformly for entitlement failures across the API.
func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Status: http.StatusForbidden, Message: message}
}

// NotFound reports an absent referenced entity (404).
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: message}
}

// Conflict reports a duplicate or already-settled state, e.g. a second
// review for the same product or paying an already-paid order (400).
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Status: http.StatusBadRequest, Message: message}
}

// From extracts an *Error from err, or nil when err is not one.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
