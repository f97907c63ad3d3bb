// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides structured output formatting for CLI commands with
// cross-platform terminal support and multiple output formats.
//
// # Features
//
//   - Multiple output formats (default human-readable and JSON)
//   - ANSI color support with automatic terminal detection
//   - Unicode detection with ASCII fallbacks for legacy terminals
//   - Tables with automatic column width calculation
//
// # Basic Usage
//
//	import "github.com/axtrust/axtrust/cliout"
//
//	cliout.Success("Accessibility permission granted")
//	cliout.Error("Permission check failed: %s", err)
//	cliout.Warning("No running applications matched %s", bundleID)
//	cliout.Info("Found %d running applications", count)
//
// # Output Formats
//
// The package supports two output formats:
//   - default: Human-readable text with colors and Unicode symbols
//   - json: Structured JSON output for automation and scripting
//
// Set the output format using SetFormat:
//
//	if err := cliout.SetFormat("json"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Color Detection
//
// Color output is enabled when stdout is a terminal, detected through
// golang.org/x/term. Use NoColor and ForceColor to override.
//
// # Hybrid Output
//
// The Print function supports hybrid output where you provide both JSON data
// and a formatter function:
//
//	data := map[string]interface{}{"trusted": true}
//	err := cliout.Print(data, func() {
//	    cliout.Success("Accessibility permission granted")
//	})
//
// In JSON mode, the data is marshaled to JSON. In default mode, the formatter
// is called.
package cliout
