// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package apps enumerates running applications matching a bundle
// identifier through a foreign application registry.
//
// The registry hands back an array it owns the elements of. Each element
// is wrapped through shared acquisition, so every handle in the returned
// slice independently owns one unit of the element's reference count and
// stays valid after the array itself has been released at function exit.
// Callers release the returned handles when done, typically via
// ReleaseAll.
package apps
