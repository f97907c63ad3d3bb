// Package notify provides cross-platform OS notification support.
// axtrust uses it to alert the user when the accessibility permission is
// missing and a grant is required.
package notify

import (
	"context"
	"errors"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	// Title is the notification title
	Title string

	// Message is the notification body
	Message string

	// Severity indicates the notification severity
	Severity string // "critical", "warning", "info"

	// Timestamp when the notification was created
	Timestamp time.Time
}

// Notifier is the interface for platform-specific notification systems.
type Notifier interface {
	// Send sends a notification to the OS notification system.
	Send(ctx context.Context, notification Notification) error

	// IsAvailable returns true if OS notifications are available.
	IsAvailable() bool

	// Close cleans up notification system resources.
	Close() error
}

// Config contains notification system configuration.
type Config struct {
	// AppName is the application name shown in notifications
	AppName string

	// Timeout for notification operations
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		AppName: "axtrust",
		Timeout: 5 * time.Second,
	}
}

// New creates a new platform-specific notifier.
func New(config Config) (Notifier, error) {
	if config.AppName == "" {
		config.AppName = DefaultConfig().AppName
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return newPlatformNotifier(config)
}

var (
	// ErrNotAvailable indicates OS notifications are not available.
	ErrNotAvailable = errors.New("OS notifications not available")
	// ErrNotificationFailed indicates the notification could not be sent.
	ErrNotificationFailed = errors.New("failed to send notification")
)
