// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

//go:build darwin

package main

import (
	"github.com/axtrust/axtrust/cfutil"
)

func newBridge() (bridge, error) {
	return cfutil.New()
}
