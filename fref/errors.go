// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package fref

import "errors"

var (
	// ErrFactoryFailed indicates an external constructor returned null.
	ErrFactoryFailed = errors.New("foreign factory returned null")
	// ErrUnexpectedNull indicates a foreign call that is contractually
	// expected to return a non-null reference returned null.
	ErrUnexpectedNull = errors.New("unexpected null foreign reference")
)

// ExternalError wraps an opaque external failure with a user-facing
// message and an optional cause. It is used for top-level conditions such
// as a missing permission, not for the per-call null checks covered by
// the sentinel errors above.
type ExternalError struct {
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExternalError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *ExternalError) Unwrap() error {
	return e.Cause
}
