// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

//go:build !darwin

package browser

func openAccessibilitySettings() error {
	return ErrSettingsUnsupported
}
