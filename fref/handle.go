// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package fref

// Handle owns one unit of external reference count for a single foreign
// allocation. The type parameter is a compile-time marker only; it has no
// runtime representation.
//
// Invariant: between construction and Release, ref is non-null and the
// external count of the allocation is at least one. Once every Handle for
// an allocation has been released, any raw reference derived from one of
// them is dangling.
type Handle[T RefCounted] struct {
	sys      System
	ref      Ref
	released bool
}

// AcquireOwned wraps a raw reference the caller already owns one count
// of, such as the result of a foreign create or copy call. No retain is
// performed. Returns ok=false when raw is null.
//
// The caller must actually hold the count being transferred: use
// AcquireShared instead for references borrowed from another owner, or
// the eventual release will be one the caller never owned.
func AcquireOwned[T RefCounted](sys System, raw Ref) (*Handle[T], bool) {
	if raw.IsNull() {
		return nil, false
	}
	recordAcquire(acquireOwned)
	return &Handle[T]{sys: sys, ref: raw}, true
}

// AcquireShared wraps a reference owned by another structure, for example
// an element inside a foreign array, by retaining it first. The returned
// Handle is an independent owner that outlives the original one. Returns
// ok=false when raw is null, in which case no retain is attempted.
func AcquireShared[T RefCounted](sys System, raw Ref) (*Handle[T], bool) {
	if raw.IsNull() {
		return nil, false
	}
	sys.Retain(raw)
	recordAcquire(acquireShared)
	return &Handle[T]{sys: sys, ref: raw}, true
}

// Clone retains the allocation and returns a new independent owner of it.
// Cloning a live handle cannot fail: the allocation is valid and its
// count is at least one for as long as the receiver exists.
func (h *Handle[T]) Clone() *Handle[T] {
	h.sys.Retain(h.ref)
	recordClone()
	return &Handle[T]{sys: h.sys, ref: h.ref}
}

// StrongCount returns the external reference count of the allocation.
// Observational only. The value includes owners other than this handle.
func (h *Handle[T]) StrongCount() int64 {
	return h.sys.Count(h.ref)
}

// Raw exposes the underlying reference for passing into foreign calls.
// The returned reference must not be used after the last Handle owning
// the allocation has been released.
func (h *Handle[T]) Raw() Ref {
	return h.ref
}

// Release gives up this handle's ownership, decrementing the external
// count. If this was the last owner the external system deallocates the
// object. Release is idempotent per handle: only the first call has any
// effect, so it is safe to defer unconditionally.
func (h *Handle[T]) Release() {
	if h.released {
		return
	}
	h.released = true
	h.sys.Release(h.ref)
	recordRelease()
}
