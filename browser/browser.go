// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkg/browser"
)

var (
	// ErrInvalidURL indicates the URL does not use an allowed scheme.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrSettingsUnsupported indicates the platform has no known settings URL.
	ErrSettingsUnsupported = errors.New("opening system settings is not supported on this platform")
)

// LaunchOptions configures URL launch behavior.
type LaunchOptions struct {
	// URL to open in the browser
	URL string

	// NoLaunch skips launching and only validates the URL
	NoLaunch bool
}

// Launch opens a web URL in the default browser. Only http and https
// URLs are accepted; settings schemes go through OpenAccessibilitySettings.
func Launch(ctx context.Context, options LaunchOptions) error {
	if err := validateURL(options.URL); err != nil {
		return err
	}

	if options.NoLaunch {
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := browser.OpenURL(options.URL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

// OpenAccessibilitySettings opens the OS settings pane where the user
// grants the accessibility permission. On macOS this is the Privacy &
// Security > Accessibility pane. Other platforms have no equivalent
// permission and return ErrSettingsUnsupported.
func OpenAccessibilitySettings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return openAccessibilitySettings()
}

func validateURL(url string) error {
	if url == "" {
		return fmt.Errorf("%w: URL is empty", ErrInvalidURL)
	}
	if !strings.HasPrefix(url, "https://") && !strings.HasPrefix(url, "http://") {
		return fmt.Errorf("%w: URL must start with http:// or https://", ErrInvalidURL)
	}
	return nil
}
