// Package errors provides a code-carrying error type shared by every layer
package errors

// Import as perr, the standard library package stays reachable as errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine facing class of an error, it is written to the
// wire as a string so clients can switch on it
type ErrorCode string

const (
	ErrorCodeUnknown         ErrorCode = "unknown"
	ErrorCodePanic           ErrorCode = "panic"
	ErrorCodeUnavailable     ErrorCode = "unavailable"
	ErrorCodeTooManyRequests ErrorCode = "too_many_requests"
	ErrorCodeConflict        ErrorCode = "conflict"
	ErrorCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrorCodeValidation      ErrorCode = "validation"
	ErrorCodeJSON            ErrorCode = "json"
	ErrorCodeNotFound        ErrorCode = "not_found"
	ErrorCodeDuplicateKey    ErrorCode = "duplicate_key"
	ErrorCodeDB              ErrorCode = "db"

	// ErrorCodeGone marks a resource that existed but was closed, a torn down
	// session for example
	ErrorCodeGone ErrorCode = "gone"

	// ErrorCodeUpstream marks a failure reported by the warehouse backend
	ErrorCodeUpstream ErrorCode = "upstream"
)

var statusByCode = map[ErrorCode]int{
	ErrorCodeNotFound:        http.StatusNotFound,
	ErrorCodeInvalidArgument: http.StatusUnprocessableEntity,
	ErrorCodeDuplicateKey:    http.StatusConflict,
	ErrorCodeConflict:        http.StatusConflict,
	ErrorCodeValidation:      http.StatusBadRequest,
	ErrorCodeJSON:            http.StatusBadRequest,
	ErrorCodeTooManyRequests: http.StatusTooManyRequests,
	ErrorCodeUnavailable:     http.StatusServiceUnavailable,
	ErrorCodeGone:            http.StatusGone,
	ErrorCodeUpstream:        http.StatusBadGateway,
}

// HTTPStatusCode maps c to a response status, unmapped codes are 500
func HTTPStatusCode(c ErrorCode) int {
	if s, ok := statusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// ErrNotFound is returned by store helpers when a keyed read or write hit no row
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a client safe message, the offending request field
// when there is one, and the wrapped cause
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
}

// Wire is what the API exposes of an error
type Wire struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Field   string    `json:"field,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.orig }

// Code returns the error code
func (e *Error) Code() ErrorCode { return e.code }

// Field returns the offending field, if any
func (e *Error) Field() string { return e.field }

// ToWire drops the cause, it may hold driver or upstream detail
func (e *Error) ToWire() Wire { return Wire{Code: e.code, Message: e.msg, Field: e.field} }

// WireFrom converts any error for the wire, foreign errors keep their text
// under the unknown code
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Code: ErrorCodeUnknown, Message: err.Error()}
}

// Root returns the deepest wrapped cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// As returns the outermost *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns err's code, ErrorCodeUnknown for foreign errors
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to a response status
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// WithField returns a copy of err naming the request field it belongs to
// foreign errors are returned unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// New returns an *Error with code and msg
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf is New with a format
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap returns an *Error with code and msg whose cause is orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf is Wrap with a format
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

func NotFoundf(format string, a ...any) error    { return Newf(ErrorCodeNotFound, format, a...) }
func InvalidArgf(format string, a ...any) error  { return Newf(ErrorCodeInvalidArgument, format, a...) }
func Validationf(format string, a ...any) error  { return Newf(ErrorCodeValidation, format, a...) }
func JSONErrf(format string, a ...any) error     { return Newf(ErrorCodeJSON, format, a...) }
func Conflictf(format string, a ...any) error    { return Newf(ErrorCodeConflict, format, a...) }
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }
func Gonef(format string, a ...any) error        { return Newf(ErrorCodeGone, format, a...) }
func Upstreamf(format string, a ...any) error    { return Newf(ErrorCodeUpstream, format, a...) }
