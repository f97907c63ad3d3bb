// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package procutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo describes one running process matched by FindByName.
type ProcessInfo struct {
	PID  int32  `json:"pid"`
	Name string `json:"name"`
	Exe  string `json:"exe,omitempty"`
}

// FindByName returns all running processes whose name equals name,
// case-insensitively. A name matching no process returns an empty slice,
// not an error. Processes that disappear or deny access mid-enumeration
// are skipped.
func FindByName(ctx context.Context, name string) ([]ProcessInfo, error) {
	if name == "" {
		return nil, fmt.Errorf("process name cannot be empty")
	}

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate processes: %w", err)
	}

	matches := make([]ProcessInfo, 0)
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if !strings.EqualFold(pname, name) {
			continue
		}
		info := ProcessInfo{PID: p.Pid, Name: pname}
		if exe, err := p.ExeWithContext(ctx); err == nil {
			info.Exe = exe
		}
		matches = append(matches, info)
	}

	return matches, nil
}
