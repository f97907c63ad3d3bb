// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

//go:build darwin

package browser

import (
	"fmt"
	"os/exec"
)

// accessibilitySettingsURL deep-links into System Settings > Privacy &
// Security > Accessibility.
const accessibilitySettingsURL = "x-apple.systempreferences:com.apple.preference.security?Privacy_Accessibility"

func openAccessibilitySettings() error {
	cmd := exec.Command("open", accessibilitySettingsURL)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open accessibility settings: %w", err)
	}
	return nil
}
