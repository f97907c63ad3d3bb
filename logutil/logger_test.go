// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("monitor")
	if logger == nil {
		t.Fatal("NewLogger returned nil")
	}
	if logger.Component() != "monitor" {
		t.Errorf("expected component 'monitor', got %q", logger.Component())
	}

	logger.Info("hello")
	output := buf.String()
	if !strings.Contains(output, "component=monitor") {
		t.Errorf("expected output to contain component=monitor, got: %s", output)
	}
}

func TestWithBundleAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("apps").WithBundle("com.apple.Safari")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=apps") {
		t.Errorf("expected component=apps in output, got: %s", output)
	}
	if !strings.Contains(output, "bundleId=com.apple.Safari") {
		t.Errorf("expected bundleId=com.apple.Safari in output, got: %s", output)
	}
}

func TestWithOperationAddsContext(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("ax").WithOperation("check")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "component=ax") {
		t.Errorf("expected component=ax in output, got: %s", output)
	}
	if !strings.Contains(output, "operation=check") {
		t.Errorf("expected operation=check in output, got: %s", output)
	}
}

func TestWithFieldsAddsArbitraryFields(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("comp").WithFields("pid", 4242, "mode", "shared")
	logger.Info("test")

	output := buf.String()
	if !strings.Contains(output, "pid=4242") {
		t.Errorf("expected pid=4242 in output, got: %s", output)
	}
	if !strings.Contains(output, "mode=shared") {
		t.Errorf("expected mode=shared in output, got: %s", output)
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("monitor").WithBundle("com.apple.Terminal").WithOperation("count")
	logger.Info("chain test")

	output := buf.String()
	if !strings.Contains(output, "component=monitor") {
		t.Errorf("expected component=monitor, got: %s", output)
	}
	if !strings.Contains(output, "bundleId=com.apple.Terminal") {
		t.Errorf("expected bundleId=com.apple.Terminal, got: %s", output)
	}
	if !strings.Contains(output, "operation=count") {
		t.Errorf("expected operation=count, got: %s", output)
	}
	// Component should still be the original
	if logger.Component() != "monitor" {
		t.Errorf("expected component 'monitor', got %q", logger.Component())
	}
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, false) // debug=true to capture all levels

			logger := NewLogger("lvl-test")
			tt.logFunc(logger, "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, "level test msg") {
				t.Errorf("expected message in output, got: %s", output)
			}
		})
	}
}

func TestLogLevelsStructured(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, true, true)

	logger := NewLogger("json-test")
	logger.Info("structured msg", "count", 42)

	output := buf.String()
	if !strings.Contains(output, `"component":"json-test"`) {
		t.Errorf("expected component in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"msg":"structured msg"`) {
		t.Errorf("expected msg in JSON output, got: %s", output)
	}
	if !strings.Contains(output, `"count":42`) {
		t.Errorf("expected count in JSON output, got: %s", output)
	}
}
