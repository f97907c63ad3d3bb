// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing utilities.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Creating temporary directories with automatic cleanup (TempDir)
//   - Common string assertions (Contains)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	import (
//	    "testing"
//	    "github.com/axtrust/axtrust/testutil"
//	)
//
//	func TestCommand(t *testing.T) {
//	    output := testutil.CaptureOutput(t, func() error {
//	        return runCommand()
//	    })
//
//	    if !testutil.Contains(output, "trusted") {
//	        t.Error("expected trusted status")
//	    }
//	}
package testutil
