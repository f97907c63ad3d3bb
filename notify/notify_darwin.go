//go:build darwin

package notify

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// darwinNotifier implements Notifier for macOS using osascript.
type darwinNotifier struct {
	config Config
}

// newPlatformNotifier creates a macOS-specific notifier.
func newPlatformNotifier(config Config) (Notifier, error) {
	return &darwinNotifier{
		config: config,
	}, nil
}

// maxAppleScriptStringLength bounds AppleScript strings to prevent
// resource exhaustion.
const maxAppleScriptStringLength = 1000

// sanitizeForAppleScript sanitizes a string for safe use in AppleScript.
// This prevents command injection attacks when executing osascript.
func sanitizeForAppleScript(s string) string {
	if len(s) > maxAppleScriptStringLength {
		s = s[:maxAppleScriptStringLength]
	}

	// Replace backslashes first (before other escapes that add backslashes)
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	// Remove control characters that could be used for injection
	s = strings.Map(func(r rune) rune {
		if r < 32 && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)

	return s
}

// Send sends a notification using the macOS notification system.
func (d *darwinNotifier) Send(ctx context.Context, notification Notification) error {
	ctx, cancel := context.WithTimeout(ctx, d.config.Timeout)
	defer cancel()

	title := sanitizeForAppleScript(notification.Title)
	message := sanitizeForAppleScript(notification.Message)
	subtitle := sanitizeForAppleScript(d.config.AppName)

	script := fmt.Sprintf(`display notification "%s" with title "%s" subtitle "%s"`,
		message, title, subtitle)

	cmd := exec.CommandContext(ctx, "osascript", "-e", script)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: %v (output: %s)", ErrNotificationFailed, err, string(output))
	}

	return nil
}

// IsAvailable returns true when osascript is present.
func (d *darwinNotifier) IsAvailable() bool {
	_, err := exec.LookPath("osascript")
	return err == nil
}

// Close is a no-op on macOS.
func (d *darwinNotifier) Close() error {
	return nil
}
