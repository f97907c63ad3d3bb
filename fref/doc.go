// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package fref provides an owning wrapper for foreign reference-counted
// object handles, such as Core Foundation objects, whose lifetimes are
// governed by an external retain/release protocol rather than the Go
// garbage collector.
//
// The package is built around three pieces:
//
//   - System, the injected accessor for the external retain, release, and
//     count primitives. Production code wires the real foreign bindings;
//     tests substitute an in-memory implementation.
//   - Handle[T], a generic owner of exactly one unit of external reference
//     count for one allocation. A constructed Handle always refers to a
//     valid allocation, and releasing the last Handle is what allows the
//     external system to deallocate it.
//   - The two acquisition paths, AcquireOwned and AcquireShared. Owned
//     acquisition wraps a fresh reference the caller already holds one
//     count of (no retain). Shared acquisition retains first, because the
//     reference is borrowed from another owner such as a containing array.
//
// Picking the wrong acquisition path is the classic failure mode of manual
// reference counting: owned acquisition of a borrowed reference
// under-counts and leads to a double release, while shared acquisition of
// a fresh reference over-counts and leaks. The two paths are deliberately
// separate top-level functions so call sites state their intent.
//
// Handles are not internally synchronized. To share an allocation across
// goroutines, give each goroutine its own Clone.
package fref
