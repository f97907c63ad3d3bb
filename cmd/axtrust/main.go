// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"os"

	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/fref"
)

// Populated via ldflags at build time.
var (
	buildVersion = "0.0.0-dev"
	buildDate    = "unknown"
	gitCommit    = "unknown"
)

// errPermissionDenied signals a clean "permission not granted" exit. The
// check command already reported it to the user, so main only sets the
// exit code.
var errPermissionDenied = &fref.ExternalError{Message: "accessibility permission not granted"}

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errPermissionDenied) {
			cliout.Error("%s", err)
		}
		os.Exit(1)
	}
}
