// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package ax

import (
	"fmt"

	"github.com/axtrust/axtrust/fref"
)

// Options marks the foreign options dictionary passed to the trust query.
type Options struct{}

// ForeignRefCounted marks Options as a foreign reference-counted pointee.
func (Options) ForeignRefCounted() {}

// Framework is the slice of the accessibility framework this package
// consumes. The constant accessors return process-wide framework globals;
// they are methods rather than package variables so tests can substitute
// them, including fault injection of null references.
type Framework interface {
	fref.System

	// TrustedCheckOptionPrompt returns the framework constant keying
	// whether the trust check may prompt the user.
	TrustedCheckOptionPrompt() fref.Ref

	// Boolean returns the framework's shared boolean constant for v.
	Boolean(v bool) fref.Ref

	// CreateOptions builds a key/value options dictionary from parallel
	// reference lists. The result is a fresh reference owned by the
	// caller, or null on failure.
	CreateOptions(keys, values []fref.Ref) fref.Ref

	// IsProcessTrusted reports whether the current process holds the
	// accessibility permission, honoring the given options.
	IsProcessTrusted(options fref.Ref) bool
}

// CheckPermission reports whether the current process holds the
// accessibility permission, prompting the user to grant it if not.
func CheckPermission(fw Framework) (bool, error) {
	return Check(fw, true)
}

// Check reports whether the current process holds the accessibility
// permission. When prompt is true and the permission is absent, the OS
// shows its grant dialog.
//
// Returns fref.ErrFactoryFailed if the options dictionary cannot be
// built; the trust query is not performed in that case.
func Check(fw Framework, prompt bool) (bool, error) {
	keys := []fref.Ref{fw.TrustedCheckOptionPrompt()}
	values := []fref.Ref{fw.Boolean(prompt)}

	// The factory result is a fresh owned reference; wrapping it first
	// guarantees the release regardless of how the query goes.
	options, ok := fref.AcquireOwned[Options](fw, fw.CreateOptions(keys, values))
	if !ok {
		return false, fmt.Errorf("%w: accessibility options dictionary", fref.ErrFactoryFailed)
	}
	defer options.Release()

	return fw.IsProcessTrusted(options.Raw()), nil
}
