// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package cfutil binds the Core Foundation, HIServices, and AppKit
// surfaces axtrust consumes, without cgo, by loading the system
// frameworks at runtime via github.com/ebitengine/purego.
//
// The Bridge type implements fref.System, ax.Framework, and
// apps.Registry. Ownership at the boundary follows Core Foundation
// conventions: create/copy results are handed out owned, and anything the
// frameworks autorelease is retained inside an autorelease pool before it
// crosses into Go, so callers always receive references they own.
//
// On non-darwin platforms New returns ErrUnsupported and Available
// reports false; the CLI falls back to portable process enumeration.
package cfutil
