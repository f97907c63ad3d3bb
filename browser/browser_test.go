// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package browser

import (
	"context"
	"errors"
	"testing"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https URL", "https://example.com", false},
		{"http URL", "http://localhost:8080/docs", false},
		{"empty URL", "", true},
		{"file scheme", "file:///etc/passwd", true},
		{"javascript scheme", "javascript:alert(1)", true},
		{"settings scheme", "x-apple.systempreferences:com.apple.preference.security", true},
		{"missing scheme", "example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateURL(tt.url)
			if tt.wantErr && err == nil {
				t.Errorf("validateURL(%q) = nil, expected error", tt.url)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("validateURL(%q) = %v, expected nil", tt.url, err)
			}
			if tt.wantErr && err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("validateURL(%q) = %v, expected ErrInvalidURL", tt.url, err)
			}
		})
	}
}

func TestLaunchNoLaunchValidatesOnly(t *testing.T) {
	if err := Launch(context.Background(), LaunchOptions{URL: "https://example.com", NoLaunch: true}); err != nil {
		t.Errorf("Launch with NoLaunch = %v, expected nil", err)
	}
}

func TestLaunchRejectsInvalidURL(t *testing.T) {
	err := Launch(context.Background(), LaunchOptions{URL: "not-a-url"})
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("Launch() = %v, expected ErrInvalidURL", err)
	}
}

func TestLaunchHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Launch(ctx, LaunchOptions{URL: "https://example.com"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Launch() = %v, expected context.Canceled", err)
	}
}

func TestOpenAccessibilitySettingsHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := OpenAccessibilitySettings(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("OpenAccessibilitySettings() = %v, expected context.Canceled", err)
	}
}
