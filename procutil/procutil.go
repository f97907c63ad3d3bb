// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"

	"github.com/shirou/gopsutil/v4/process"
)

// IsProcessRunning reports whether a process with the given pid is
// currently running. Invalid pids and enumeration failures report false.
func IsProcessRunning(ctx context.Context, pid int32) bool {
	if pid <= 0 {
		return false
	}
	ok, err := process.PidExistsWithContext(ctx, pid)
	return err == nil && ok
}
