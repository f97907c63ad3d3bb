// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package fref

// Ref is a raw foreign object reference. It is pointer-sized and opaque;
// the zero value represents null. A Ref on its own carries no ownership.
type Ref uintptr

// IsNull reports whether the reference is null.
func (r Ref) IsNull() bool {
	return r == 0
}

// System is the external retain/release protocol, injected so that the
// real foreign bindings and test doubles are interchangeable. All three
// primitives must only be invoked with non-null references to live
// allocations; the external system is assumed to make them atomic.
type System interface {
	// Retain increments the external reference count and returns the
	// reference, declaring one additional owner.
	Retain(ref Ref) Ref

	// Release decrements the external reference count. Releasing the
	// last owner deallocates the referenced object.
	Release(ref Ref)

	// Count returns the current external reference count. Observational
	// only; it has no side effect on ownership.
	Count(ref Ref) int64
}

// RefCounted constrains Handle type parameters to phantom marker types
// that stand for foreign reference-counted pointees. Invoking retain or
// release on an allocation outside the external protocol is undefined, so
// the constraint keeps non-counted types out at compile time instead of
// by documentation.
//
// Marker types are zero-size and never instantiated at runtime:
//
//	type Options struct{}
//
//	func (Options) ForeignRefCounted() {}
type RefCounted interface {
	ForeignRefCounted()
}
