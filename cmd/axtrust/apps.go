// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/axtrust/axtrust/apps"
	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/procutil"
	"github.com/axtrust/axtrust/security"
)

// appEntry is the JSON shape of one running application.
type appEntry struct {
	PID         int32  `json:"pid"`
	Name        string `json:"name"`
	StrongCount int64  `json:"strongCount"`
	Alive       bool   `json:"alive"`
}

// livenessFunc cross-checks a registry-reported pid against the OS.
type livenessFunc func(pid int32) bool

// appsReport is the JSON shape of an apps query.
type appsReport struct {
	BundleID  string     `json:"bundleId"`
	Count     int        `json:"count"`
	Apps      []appEntry `json:"apps"`
	Timestamp time.Time  `json:"timestamp"`
}

func newAppsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apps [bundle-id...]",
		Short: "List running applications by bundle identifier",
		Long: `List running applications matching the given bundle identifiers.

Without arguments, the bundle identifiers from the config file are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := args
			if len(ids) == 0 {
				ids = opts.cfg.BundleIDs
			}
			if len(ids) == 0 {
				return fmt.Errorf("no bundle identifiers given and none configured")
			}

			reg, err := newBridge()
			if err != nil {
				return err
			}

			alive := func(pid int32) bool {
				return procutil.IsProcessRunning(cmd.Context(), pid)
			}
			for _, id := range ids {
				if err := reportApps(reg, id, alive); err != nil {
					return err
				}
			}
			return nil
		},
	}
	return cmd
}

// reportApps queries one bundle identifier and prints the result. The
// registry snapshot can lag the OS, so each reported pid is re-checked
// through alive.
func reportApps(reg apps.Registry, bundleID string, alive livenessFunc) error {
	if err := security.ValidateBundleID(bundleID); err != nil {
		return err
	}

	handles, err := apps.FindByBundleID(reg, bundleID)
	if err != nil {
		return err
	}
	defer apps.ReleaseAll(handles)

	report := appsReport{
		BundleID:  bundleID,
		Count:     len(handles),
		Apps:      make([]appEntry, 0, len(handles)),
		Timestamp: time.Now(),
	}
	for _, h := range handles {
		pid := apps.Pid(reg, h)
		report.Apps = append(report.Apps, appEntry{
			PID:         pid,
			Name:        apps.Name(reg, h),
			StrongCount: h.StrongCount(),
			Alive:       alive(pid),
		})
	}

	return cliout.Print(report, func() {
		if len(handles) == 0 {
			cliout.Warning("No running applications match %s", bundleID)
			return
		}
		cliout.Info("%s: %d running", bundleID, len(handles))
		rows := make([]cliout.TableRow, 0, len(report.Apps))
		for _, entry := range report.Apps {
			state := "running"
			if !entry.Alive {
				state = "stale"
			}
			rows = append(rows, cliout.TableRow{
				"PID":   fmt.Sprintf("%d", entry.PID),
				"Name":  entry.Name,
				"Refs":  fmt.Sprintf("%d", entry.StrongCount),
				"State": state,
			})
		}
		cliout.Table([]string{"PID", "Name", "Refs", "State"}, rows)
	})
}
