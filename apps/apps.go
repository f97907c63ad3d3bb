// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package apps

import (
	"fmt"

	"github.com/axtrust/axtrust/fref"
)

// BundleID marks a foreign string reference holding a bundle identifier.
type BundleID struct{}

// ForeignRefCounted marks BundleID as a foreign reference-counted pointee.
func (BundleID) ForeignRefCounted() {}

// AppList marks a foreign array of running applications.
type AppList struct{}

// ForeignRefCounted marks AppList as a foreign reference-counted pointee.
func (AppList) ForeignRefCounted() {}

// App marks a single foreign running-application object.
type App struct{}

// ForeignRefCounted marks App as a foreign reference-counted pointee.
func (App) ForeignRefCounted() {}

// Registry is the slice of the foreign application registry this package
// consumes. Array elements are owned by the array, not transferred to the
// caller; everything else returning a reference transfers ownership.
type Registry interface {
	fref.System

	// CreateString builds a foreign string from text. The result is a
	// fresh reference owned by the caller, or null on failure.
	CreateString(s string) fref.Ref

	// CopyRunningApplications returns an array of applications whose
	// bundle identifier equals the given foreign string. The array is a
	// fresh reference owned by the caller, or null on failure. An
	// identifier matching nothing yields an empty array, not null.
	CopyRunningApplications(bundleID fref.Ref) fref.Ref

	// ArrayLength returns the number of elements in the array.
	ArrayLength(list fref.Ref) int

	// ArrayElement returns the element at index. The reference is
	// borrowed from the array and owned by it.
	ArrayElement(list fref.Ref, index int) fref.Ref

	// ProcessIdentifier returns the OS process id of an application.
	ProcessIdentifier(app fref.Ref) int32

	// LocalizedName returns the display name of an application.
	LocalizedName(app fref.Ref) string
}

// FindByBundleID returns one independently-owned handle per running
// application matching the bundle identifier. An identifier matching no
// running application returns an empty slice and a nil error.
//
// The returned handles remain valid after the call: each was acquired
// through the shared path, so releasing the registry's array inside this
// function does not invalidate them. The caller owns the handles and must
// release each one.
func FindByBundleID(reg Registry, id string) ([]*fref.Handle[App], error) {
	name, ok := fref.AcquireOwned[BundleID](reg, reg.CreateString(id))
	if !ok {
		return nil, fmt.Errorf("%w: bundle identifier string %q", fref.ErrUnexpectedNull, id)
	}
	defer name.Release()

	list, ok := fref.AcquireOwned[AppList](reg, reg.CopyRunningApplications(name.Raw()))
	if !ok {
		return nil, fmt.Errorf("%w: running application list for %q", fref.ErrUnexpectedNull, id)
	}
	defer list.Release()

	count := reg.ArrayLength(list.Raw())
	acquired := make([]*fref.Handle[App], 0, count)
	for i := 0; i < count; i++ {
		h, ok := fref.AcquireShared[App](reg, reg.ArrayElement(list.Raw(), i))
		if !ok {
			// No partial results: give back every count taken so far.
			ReleaseAll(acquired)
			return nil, fmt.Errorf("%w: application at index %d", fref.ErrUnexpectedNull, i)
		}
		acquired = append(acquired, h)
	}

	return acquired, nil
}

// Pid reads the process identifier of an application handle.
func Pid(reg Registry, h *fref.Handle[App]) int32 {
	return reg.ProcessIdentifier(h.Raw())
}

// Name reads the localized display name of an application handle.
func Name(reg Registry, h *fref.Handle[App]) string {
	return reg.LocalizedName(h.Raw())
}

// ReleaseAll releases every handle in the slice.
func ReleaseAll(handles []*fref.Handle[App]) {
	for _, h := range handles {
		h.Release()
	}
}
