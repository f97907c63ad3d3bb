// Copyright (c) axtrust authors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/axtrust/axtrust/apps"
	"github.com/axtrust/axtrust/ax"
	"github.com/axtrust/axtrust/cliout"
	"github.com/axtrust/axtrust/config"
	"github.com/axtrust/axtrust/logutil"
	"github.com/axtrust/axtrust/version"
)

// bridge is the platform surface the commands need. On macOS it is
// implemented by cfutil.Bridge; elsewhere construction fails.
type bridge interface {
	ax.Framework
	apps.Registry
}

// rootOptions holds global flag values shared by all subcommands.
type rootOptions struct {
	output     string
	debug      bool
	noColor    bool
	configPath string

	cfg *config.Config
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "axtrust",
		Short: "Check and monitor the macOS accessibility permission",
		Long: `axtrust checks whether the current process holds the macOS accessibility
permission, lists running applications by bundle identifier, and can
monitor both continuously with Prometheus metrics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			opts.cfg = cfg

			if !cmd.Flags().Changed("output") && cfg.Output != "" {
				opts.output = cfg.Output
			}
			if err := cliout.SetFormat(opts.output); err != nil {
				return err
			}
			if opts.noColor {
				cliout.NoColor()
			}
			logutil.SetupLogger(opts.debug, opts.output == "json")
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default $HOME/"+config.DefaultFileName+")")

	info := version.New("axtrust")
	info.Version = buildVersion
	info.BuildDate = buildDate
	info.GitCommit = gitCommit

	root.AddCommand(newCheckCommand(opts))
	root.AddCommand(newAppsCommand(opts))
	root.AddCommand(newPsCommand(opts))
	root.AddCommand(newWatchCommand(opts))
	root.AddCommand(version.NewCommand(info, &opts.output))

	return root
}
