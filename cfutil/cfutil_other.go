//go:build !darwin

// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package cfutil

// Bridge is a placeholder on platforms without the accessibility
// frameworks. New never returns one.
type Bridge struct{}

// Available reports whether the foreign frameworks can be loaded here.
func Available() bool { return false }

// New returns ErrUnsupported on non-darwin platforms.
func New() (*Bridge, error) {
	return nil, ErrUnsupported
}
