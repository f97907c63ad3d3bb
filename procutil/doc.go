// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

// Package procutil provides cross-platform process utilities for axtrust,
// built on github.com/shirou/gopsutil/v4/process, which uses the native
// APIs of each platform:
//
//   - Windows: Native Windows API (OpenProcess, GetExitCodeProcess)
//   - Linux: /proc filesystem
//   - macOS/BSD: sysctl system calls
//
// It offers a liveness check for a known PID and name-based enumeration
// of running processes. Enumeration by name is the portable fallback for
// the bundle-identifier lookup in package apps, which needs the darwin
// accessibility frameworks. Name matching is exact and case-insensitive;
// it inspects process names, not bundle metadata.
//
// The liveness check cross-checks pids reported by the accessibility
// registry: a pid can go stale between the registry snapshot and the
// moment it is displayed.
//
// # Example Usage
//
//	procs, err := procutil.FindByName(ctx, "Safari")
//	if err != nil {
//	    return err
//	}
//	for _, p := range procs {
//	    fmt.Printf("%d %s alive=%v\n", p.PID, p.Name, procutil.IsProcessRunning(ctx, p.PID))
//	}
package procutil
