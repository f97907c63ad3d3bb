// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package ax queries the OS accessibility-trust permission for the
// current process.
//
// The foreign surface (framework constants, the options-dictionary
// factory, and the trust query itself) is reached through the Framework
// interface so that the real Core Foundation bindings in package cfutil
// and test doubles are interchangeable. The package's only job at the
// boundary is ownership discipline: the options dictionary returned by
// the factory is wrapped immediately as an owned handle so it is released
// on every exit path.
package ax
