// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package cfutil

import "errors"

// ErrUnsupported indicates the foreign frameworks are not available on
// this platform. Callers fall back to portable process enumeration.
var ErrUnsupported = errors.New("cfutil: accessibility frameworks unavailable on this platform")
