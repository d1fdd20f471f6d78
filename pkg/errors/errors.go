// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package errors

import (
	"errors"
	"fmt"
)

// Error is an error with a status code and an optional cause.
type Error struct {
	Code    Status
	Message string
	Cause   error
}

// IsKnownError returns true if the status is non-zero and not UnknownError.
func (s Status) IsKnownError() bool { return s != 0 && s != UnknownError }

// Error implements error.
func (s Status) Error() string { return s.String() }

// Wrap wraps err with the status. Wrap returns nil if err is nil.
func (s Status) Wrap(err error) error {
	if err == nil {
		// The return type must be `error` - otherwise this returns statement
		// can cause strange errors
		return nil
	}

	// Don't double-wrap an error that already carries a known status
	var e *Error
	if errors.As(err, &e) && !s.IsKnownError() {
		return err
	}

	return &Error{Code: s, Cause: err}
}

// With returns an error with the status and a message built from v.
func (s Status) With(v ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprint(v...)}
}

// WithFormat returns an error with the status and a formatted message. If the
// format wraps an error with %w, that error becomes the cause.
func (s Status) WithFormat(format string, args ...interface{}) *Error {
	err := fmt.Errorf(format, args...)
	e := &Error{Code: s, Message: err.Error()}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		e.Cause = u.Unwrap()
	}
	return e
}

// WithCauseAndFormat returns an error with the status, a formatted message,
// and the given cause.
func (s Status) WithCauseAndFormat(cause error, format string, args ...interface{}) *Error {
	return &Error{Code: s, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause != nil:
		return e.Cause.Error()
	case e.Message == "":
		return e.Code.String()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Code
}

// Is returns true if target is the error's status or an equal *Error.
func (e *Error) Is(target error) bool {
	switch target := target.(type) {
	case Status:
		return e.Code == target
	case *Error:
		return e.Code == target.Code && e.Message == target.Message
	}
	return false
}
