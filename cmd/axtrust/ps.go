// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/procutil"
)

// psReport is the JSON shape of a process query.
type psReport struct {
	Name      string                 `json:"name"`
	Count     int                    `json:"count"`
	Processes []procutil.ProcessInfo `json:"processes"`
	Timestamp time.Time              `json:"timestamp"`
}

func newPsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ps <name>",
		Short: "List processes by executable name",
		Long: `List running processes whose executable name matches, on any platform.

Unlike apps, this matches process names rather than bundle identifiers
and does not require the accessibility frameworks.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			procs, err := procutil.FindByName(cmd.Context(), name)
			if err != nil {
				return err
			}

			report := psReport{
				Name:      name,
				Count:     len(procs),
				Processes: procs,
				Timestamp: time.Now(),
			}
			return cliout.Print(report, func() {
				if len(procs) == 0 {
					cliout.Warning("No processes match %q", name)
					return
				}
				cliout.Info("%d processes match %q", len(procs), name)
				rows := make([]cliout.TableRow, 0, len(procs))
				for _, p := range procs {
					rows = append(rows, cliout.TableRow{
						"PID":  fmt.Sprintf("%d", p.PID),
						"Name": p.Name,
						"Exe":  p.Exe,
					})
				}
				cliout.Table([]string{"PID", "Name", "Exe"}, rows)
			})
		},
	}
	return cmd
}
